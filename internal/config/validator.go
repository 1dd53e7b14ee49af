package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var keys = map[string]string{
	"Config.Format":                "format",
	"Config.Warmup":                "warmup",
	"Config.Call.Loops":            "call.loops",
	"Config.Call.Baseline":         "call.baseline",
	"Config.Alloc.Baseline":        "alloc.baseline",
	"Config.PDF.Baseline":          "pdf.baseline",
	"Config.History.Threshold":     "history.threshold",
	"Config.History.FailThreshold": "history.fail_threshold",
	"Config.Alloc.Count":           "alloc.count",
	"Config.Alloc.NextSize":        "alloc.next_size",
	"Config.Alloc.MaxSize":         "alloc.max_size",
	"Config.PDF.Page":              "pdf.page",
	"Config.History.Type":          "history.type",
	"Config.Metrics.PushURL":       "metrics.push_url",
	"Config.Metrics.Job":           "metrics.job",
}

// Validate checks cfg and returns every problem in one error.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

func describe(fe validator.FieldError) string {
	key, ok := keys[fe.Namespace()]
	if !ok {
		key = fe.Namespace()
	}

	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be positive, got: %v", key, fe.Value())
	case "gte":
		return fmt.Sprintf("%s must not be negative, got: %v", key, fe.Value())
	case "gtefield":
		return fmt.Sprintf("%s must be at least alloc.next_size, got: %v", key, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got: %q", key, fe.Param(), fe.Value())
	case "url":
		return fmt.Sprintf("%s must be a URL, got: %q", key, fe.Value())
	case "required":
		return fmt.Sprintf("%s is required", key)
	default:
		return fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
}

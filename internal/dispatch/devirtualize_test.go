package dispatch

import (
	"os/exec"
	"strings"
	"testing"
)

// The interface trials must keep their dynamic calls; if the compiler can
// prove the concrete type it rewrites them into inlined static calls.
func TestSuite_InterfaceCallsStayDynamic(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles the package")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not in PATH")
	}

	out, err := exec.Command(goBin, "build", "-gcflags=-m", "-o", "/dev/null", ".").CombinedOutput()
	if err != nil {
		t.Fatalf("go build: %v\n%s", err, out)
	}

	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "./dispatch.go") && strings.Contains(line, "devirtualizing") {
			t.Errorf("interface call was devirtualized: %s", line)
		}
	}
	if !strings.Contains(string(out), "can inline (*Accumulator).Step") {
		t.Fatalf("unexpected compiler output:\n%s", out)
	}
}

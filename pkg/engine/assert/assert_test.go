package assert

import (
	"strings"
	"testing"
)

func catch(fn func()) (v *Violation) {
	defer func() {
		v = Recover(recover())
	}()
	fn()
	return nil
}

func TestThat_PassesOnTrue(t *testing.T) {
	if v := catch(func() { That(true, "ok") }); v != nil {
		t.Fatalf("That(true) raised %v", v)
	}
}

func TestThat_RecordsCallSite(t *testing.T) {
	v := catch(func() { That(1 > 2, "1 > 2") })
	if v == nil {
		t.Fatal("That(false) did not raise")
	}
	if v.Condition != "1 > 2" {
		t.Errorf("Condition = %q, want %q", v.Condition, "1 > 2")
	}
	if v.File != "assert_test.go" {
		t.Errorf("File = %q, want assert_test.go", v.File)
	}
	if v.Line == 0 {
		t.Error("Line = 0, want the caller line")
	}
	if !strings.HasPrefix(v.Error(), "Assertion failed: (1 > 2), file assert_test.go, line ") {
		t.Errorf("Error() = %q", v.Error())
	}
}

func TestFailf_Formats(t *testing.T) {
	v := catch(func() { Failf("bad delta %d", 4) })
	if v == nil || v.Condition != "bad delta 4" {
		t.Fatalf("Failf violation = %+v", v)
	}
}

func TestRecover_RepanicsForeignValues(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	catch(func() { panic("boom") })
	t.Fatal("foreign panic was swallowed")
}

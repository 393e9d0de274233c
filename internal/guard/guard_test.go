package guard

import (
	"errors"
	"testing"
)

func TestRunNormalCompletion(t *testing.T) {
	g := New(SeverityWarning)

	handlerCalls := 0
	g.SetHandler(func(_ *Failure) interface{} {
		handlerCalls++
		return "handled"
	})

	result := g.Run(func(args ...interface{}) (interface{}, error) {
		return args[0], nil
	}, "ok")

	if result != "ok" {
		t.Errorf("Run returned %v, want callable's result", result)
	}
	if handlerCalls != 0 {
		t.Errorf("handler invoked %d times for a normal completion", handlerCalls)
	}
}

func TestRunReturnedError(t *testing.T) {
	g := New(SeverityWarning)

	var seen *Failure
	handlerCalls := 0
	g.SetHandler(func(f *Failure) interface{} {
		handlerCalls++
		seen = f
		return "fallback"
	})

	cause := errors.New("boom")
	result := g.Run(func(_ ...interface{}) (interface{}, error) {
		return nil, cause
	})

	if result != "fallback" {
		t.Errorf("Run returned %v, want handler's result", result)
	}
	if handlerCalls != 1 {
		t.Fatalf("handler invoked %d times, want exactly 1", handlerCalls)
	}
	if !errors.Is(seen, cause) {
		t.Errorf("failure does not wrap the original error: %v", seen)
	}
	if seen.Severity != SeverityError {
		t.Errorf("failure severity = %v, want error", seen.Severity)
	}
}

func TestRunPromotedReport(t *testing.T) {
	g := New(SeverityWarning)

	var seen *Failure
	g.SetHandler(func(f *Failure) interface{} {
		seen = f
		return nil
	})

	reached := false
	g.Run(func(_ ...interface{}) (interface{}, error) {
		Report(SeverityWarning, "bad state: %d", 7)
		reached = true
		return nil, nil
	})

	if reached {
		t.Error("execution continued past a promoted report")
	}
	if seen == nil {
		t.Fatal("handler never saw the promoted failure")
	}
	if seen.Message != "bad state: 7" {
		t.Errorf("failure message = %q", seen.Message)
	}
	if seen.File == "" || seen.Line == 0 {
		t.Errorf("failure lacks origin location: %s:%d", seen.File, seen.Line)
	}
}

func TestRunMaskedReport(t *testing.T) {
	g := New(SeverityError)

	handlerCalls := 0
	g.SetHandler(func(_ *Failure) interface{} {
		handlerCalls++
		return nil
	})

	result := g.Run(func(_ ...interface{}) (interface{}, error) {
		Report(SeverityNotice, "below threshold")
		Report(SeverityWarning, "still below threshold")
		return "done", nil
	})

	if result != "done" {
		t.Errorf("Run returned %v, want normal result despite masked reports", result)
	}
	if handlerCalls != 0 {
		t.Errorf("handler invoked %d times for masked reports", handlerCalls)
	}
}

func TestRunForeignPanic(t *testing.T) {
	g := New(SeverityWarning)

	var seen *Failure
	g.SetHandler(func(f *Failure) interface{} {
		seen = f
		return nil
	})

	g.Run(func(_ ...interface{}) (interface{}, error) {
		panic("unexpected")
	})

	if seen == nil {
		t.Fatal("handler never saw the panic")
	}
	if seen.Message != "unexpected" {
		t.Errorf("failure message = %q, want panic value", seen.Message)
	}
}

func TestRunDefaultHandler(t *testing.T) {
	g := New(SeverityWarning)

	// No handler registered: the default handler consumes the failure
	// and yields nil.
	result := g.Run(func(_ ...interface{}) (interface{}, error) {
		return nil, errors.New("boom")
	})

	if result != nil {
		t.Errorf("Run returned %v, want nil from default handler", result)
	}
}

func TestRunNesting(t *testing.T) {
	outer := New(SeverityWarning)
	inner := New(SeverityError)

	var outerFailure *Failure
	outer.SetHandler(func(f *Failure) interface{} {
		outerFailure = f
		return nil
	})

	outer.Run(func(_ ...interface{}) (interface{}, error) {
		// The inner guard masks warnings; its policy must be restored
		// on return so the outer policy promotes them again.
		innerResult := inner.Run(func(_ ...interface{}) (interface{}, error) {
			Report(SeverityWarning, "masked inside inner guard")
			return "inner-ok", nil
		})
		if innerResult != "inner-ok" {
			return nil, errors.New("inner guard altered a normal result")
		}

		Report(SeverityWarning, "promoted by outer guard")
		return nil, nil
	})

	if outerFailure == nil {
		t.Fatal("outer guard never promoted the warning after nesting")
	}
	if outerFailure.Message != "promoted by outer guard" {
		t.Errorf("outer failure message = %q", outerFailure.Message)
	}
}

func TestReportOutsideGuard(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Report panicked outside a guarded call: %v", r)
		}
	}()
	Report(SeverityError, "no active policy")
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
		wantErr  bool
		name     string
	}{
		{"notice", SeverityNotice, false, "notice"},
		{"warning", SeverityWarning, false, "warning"},
		{"error", SeverityError, false, "error"},
		{"fatal", SeverityWarning, true, "unknown level"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := ParseSeverity(test.input)
			if (err != nil) != test.wantErr {
				t.Fatalf("ParseSeverity(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			}
			if result != test.expected {
				t.Errorf("ParseSeverity(%q) = %v, want %v", test.input, result, test.expected)
			}
		})
	}
}

package conformance_test

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/wippyai/int-runtime/conformance"
	"github.com/wippyai/int-runtime/oracle"
)

func TestAllSuitesPass(t *testing.T) {
	r := conformance.NewRunner(conformance.WithLogger(zaptest.NewLogger(t)))
	rep := r.Run(context.Background())
	if rep.Total == 0 {
		t.Fatal("no checks ran")
	}
	if rep.Failed != 0 {
		for _, res := range rep.Results {
			if !res.Pass {
				t.Errorf("%s(%s, %s) = %s, want %s", res.Op, res.A, res.B, res.Got, res.Want)
			}
		}
	}
}

func TestSuitesWithOracle(t *testing.T) {
	ctx := context.Background()
	o, err := oracle.New(ctx)
	if err != nil {
		t.Fatalf("oracle.New: %v", err)
	}
	defer o.Close(ctx)

	r := conformance.NewRunner(
		conformance.WithLogger(zaptest.NewLogger(t)),
		conformance.WithOracle(o),
	)
	rep := r.Run(ctx)
	if rep.Failed != 0 {
		for _, res := range rep.Results {
			if !res.Pass {
				t.Errorf("%s(%s, %s) = %s, want %s", res.Op, res.A, res.B, res.Got, res.Want)
			}
		}
	}

	// The oracle adds reference results on top of the library ones.
	plain := conformance.NewRunner(conformance.WithLogger(zaptest.NewLogger(t))).Run(ctx)
	if rep.Total <= plain.Total {
		t.Errorf("oracle run total = %d, plain total = %d", rep.Total, plain.Total)
	}
}

func TestRunSingleSuite(t *testing.T) {
	var target conformance.Suite
	for _, s := range conformance.Suites() {
		if s.Name == "u128" {
			target = s
		}
	}
	if target.Name == "" {
		t.Fatal("u128 suite missing from registry")
	}

	r := conformance.NewRunner(conformance.WithLogger(zaptest.NewLogger(t)))
	rep := r.Run(context.Background(), target)
	if rep.Failed != 0 {
		t.Errorf("u128 suite: %d of %d failed", rep.Failed, rep.Total)
	}
	if want := 2 * len(target.Cases); rep.Total != want {
		t.Errorf("u128 suite total = %d, want %d", rep.Total, want)
	}
}

func TestDigestDeterministic(t *testing.T) {
	ctx := context.Background()
	r := conformance.NewRunner(conformance.WithLogger(zaptest.NewLogger(t)))
	d1 := r.Run(ctx).Digest()
	d2 := r.Run(ctx).Digest()
	if d1 != d2 {
		t.Errorf("digest not deterministic: %#x vs %#x", d1, d2)
	}
	if d1 == 0 {
		t.Error("digest is zero")
	}

	// Restricting the run changes the folded tuple stream.
	sub := r.Run(ctx, conformance.Suites()[0]).Digest()
	if sub == d1 {
		t.Error("subset digest equals full digest")
	}
}

func TestSuiteRegistry(t *testing.T) {
	names := map[string]bool{}
	for _, s := range conformance.Suites() {
		if s.Name == "" || len(s.Cases) == 0 {
			t.Errorf("suite %q is empty", s.Name)
		}
		if names[s.Name] {
			t.Errorf("duplicate suite name %q", s.Name)
		}
		names[s.Name] = true
	}
	for _, want := range []string{"s64", "u64", "s32", "s128", "u128"} {
		if !names[want] {
			t.Errorf("registry missing suite %q", want)
		}
	}
}

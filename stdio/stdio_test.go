package stdio

import (
	"bytes"
	"context"
	"testing"
)

func TestOutputLevels(t *testing.T) {
	tcs := []struct {
		name    string
		quiet   bool
		verbose bool
		expect  string
	}{
		{
			name:   "default",
			expect: "facts:disks: WARNING: no usage for /data\nfacts:disks: info 2\n",
		},
		{
			name:  "quiet",
			quiet: true,
		},
		{
			name:    "verbose",
			verbose: true,
			expect:  "facts:disks: WARNING: no usage for /data\nfacts:disks: DEBUG: took 3ms\nfacts:disks: info 2\n",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			o := StdIO{Out: &out, Err: &errOut, Quiet: tc.quiet, Verbose: tc.verbose}
			o = o.WithScope("facts").AppendScope("disks")

			o.Warningf("no usage for %s", "/data")
			o.Debugf("took %dms", 3)
			o.Infof("info %d", 2)
			o.Printf("%s\n", "stdout")

			if got := errOut.String(); got != tc.expect {
				t.Errorf("expected stderr %q, got %q", tc.expect, got)
			}
			if got := out.String(); got != "stdout\n" {
				t.Errorf("expected stdout %q, got %q", "stdout\n", got)
			}
		})
	}
}

func TestAppendScopeCopies(t *testing.T) {
	base := StdIO{}.WithScope("a")
	b := base.AppendScope("b")
	c := base.AppendScope("c")
	if got := fmtScopes(b.scopes); got != "a:b: " {
		t.Errorf("expected %q, got %q", "a:b: ", got)
	}
	if got := fmtScopes(c.scopes); got != "a:c: " {
		t.Errorf("expected %q, got %q", "a:c: ", got)
	}
	if got := fmtScopes(base.ClearScope().scopes); got != "" {
		t.Errorf("expected no scope, got %q", got)
	}
}

func TestContext(t *testing.T) {
	if Get(context.Background()) == nil {
		t.Fatal("expected a default StdIO")
	}

	var out bytes.Buffer
	ctx := SetContext(context.Background(), &StdIO{Out: &out})
	Stdout(ctx).Write([]byte("hi"))
	if out.String() != "hi" {
		t.Errorf("expected context StdIO to be used, got %q", out.String())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected FromContext to panic without a StdIO")
		}
	}()
	FromContext(context.Background())
}

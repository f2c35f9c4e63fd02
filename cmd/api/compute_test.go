package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"adder/internal/calculation"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestComputeCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"3", "+", "1"}, want: "4"},
		{args: []string{"3", "-", "1"}, want: "2"},
		{args: []string{"3", "x", "1"}, want: "3"},
		{args: []string{"3", "/", "1"}, want: "3"},
		{args: []string{"5", "add", "3"}, want: "8"},
		{args: []string{"5", "/", "0"}, want: "+Inf"},
		{args: []string{"-5", "/", "0"}, want: "-Inf"},
		{args: []string{"0", "/", "0"}, want: "NaN"},
	}

	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			got, err := runRoot(t, append([]string{"compute"}, tc.args...)...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestComputeCommandErrors(t *testing.T) {
	if _, err := runRoot(t, "compute", "3", "%", "1"); !errors.Is(err, calculation.ErrUnknownSign) {
		t.Fatalf("expected ErrUnknownSign, got %v", err)
	}

	if _, err := runRoot(t, "compute", "three", "+", "1"); err == nil {
		t.Fatal("expected error for non-numeric operand")
	}

	if _, err := runRoot(t, "compute", "3", "+"); err == nil {
		t.Fatal("expected error for missing operand")
	}
}

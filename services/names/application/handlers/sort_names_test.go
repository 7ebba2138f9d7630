package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ghuser/namesort/pkg/app"
	"github.com/ghuser/namesort/pkg/config"
	"github.com/ghuser/namesort/pkg/logger"
	appsvcs "github.com/ghuser/namesort/services/names/application/services"
)

func newHandler(t *testing.T, stdin string) (*SortNamesHandler, *cobra.Command, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := &app.Application{
		Config: &config.Config{},
		Logger: logger.Nop(),
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
	}
	h := NewSortNamesHandler(appsvcs.New(a), a)
	cmd := &cobra.Command{Use: "namesort"}
	cmd.SetOut(&out)
	return h, cmd, &out
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestSortNamesHandler_Execute(t *testing.T) {
	tests := []struct {
		name    string
		content string
		stdin   string
		want    string
	}{
		{
			name:    "sorted",
			content: "Janet Parsons\nVaughn Lewis\n",
			stdin:   "A\n",
			want:    "Sorted names have been written to " + appsvcs.OutputPath,
		},
		{
			name:    "empty file",
			content: "",
			want:    "Error: Input file is empty.",
		},
		{
			name:    "malformed line",
			content: "Janet Parsons\nZhao\n",
			want:    `Error: line 2: invalid name format`,
		},
		{
			name:    "invalid answer",
			content: "Vaughn Lewis\nJanet Parsons\n",
			stdin:   "x\n",
			want:    "Invalid input. Sorting in ascending order by default.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			h, cmd, out := newHandler(t, tt.stdin)

			if err := h.Execute(cmd, []string{writeInput(t, tt.content)}); err != nil {
				t.Fatalf("Execute must not return an error, got %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Fatalf("expected %q in output, got %q", tt.want, out.String())
			}
		})
	}
}

func TestSortNamesHandler_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// A directory where the output file should be makes the write fail.
	if err := os.Mkdir(filepath.Join(dir, appsvcs.OutputPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	h, cmd, out := newHandler(t, "A\n")

	if err := h.Execute(cmd, []string{writeInput(t, "Janet Parsons\nVaughn Lewis\n")}); err != nil {
		t.Fatalf("Execute must not return an error, got %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Sorted Names:\nVaughn Lewis\nJanet Parsons\n") {
		t.Fatalf("expected sorted names before the failure, got %q", got)
	}
	if !strings.Contains(got, "Error writing names to file: ") {
		t.Fatalf("expected write error message, got %q", got)
	}
}

func TestSortNamesHandler_OrderPrecedence(t *testing.T) {
	h := &SortNamesHandler{cfg: &config.Config{SortOrder: "D"}}
	if got := h.order(); got != "D" {
		t.Fatalf("expected config order, got %q", got)
	}
	h.Order = "A"
	if got := h.order(); got != "A" {
		t.Fatalf("expected flag order, got %q", got)
	}
	if got := (&SortNamesHandler{}).order(); got != "" {
		t.Fatalf("expected empty order, got %q", got)
	}
}

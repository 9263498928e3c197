package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const closingJSON = `{
  "fechaInicio": "2026-10-01",
  "fechaFin": "2026-10-15",
  "plantelId": null,
  "resumen": {"totalRecibos": 1, "totalMonto": 1000, "totalCancelados": 0, "totalMontoCancelado": 0},
  "porTipoPago": [{"tipoPagoId": 1, "tipoPagoDesc": "Efectivo", "totalRecibos": 1, "totalMonto": 1000}],
  "recibos": [{"reciboId": 1, "folio": "A-1", "fechaPago": "2026-10-02", "alumnoNombre": "Ana", "concepto": "Colegiatura", "monto": 1000}]
}`

// execute runs the CLI in dir with the given stdin and returns stdout.
func execute(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return stdout.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if want := "cortecaja v" + version + "\n"; out != want {
		t.Errorf("version output = %q, want %q", out, want)
	}
}

func TestRenderFromFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "corte.json")
	if err := os.WriteFile(input, []byte(closingJSON), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.pdf")

	out, err := execute(t, dir, "", "render", "-i", input, "-o", output)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if strings.TrimSpace(out) != output {
		t.Errorf("render printed %q, want %q", out, output)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}

	// Check PDF magic bytes
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Error("render output does not start with PDF magic bytes")
	}
}

func TestRenderFromStdinDefaultName(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, closingJSON, "render", "-i", "-", "--plantel", "4", "--desde", "2026-09-01", "--hasta", "2026-09-30")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	want := "corte-caja_2026-09-01_2026-09-30_plantel-4.pdf"
	if strings.TrimSpace(out) != want {
		t.Errorf("render printed %q, want %q", out, want)
	}
	if _, err := os.Stat(filepath.Join(dir, want)); err != nil {
		t.Errorf("default output file missing: %v", err)
	}
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"missing input flag", []string{"render"}},
		{"missing input file", []string{"render", "-i", filepath.Join(dir, "absent.json")}},
		{"invalid JSON", []string{"render", "-i", broken}},
		{"email without smtp", []string{"render", "-i", broken, "--email"}},
		{"unexpected argument", []string{"render", "-i", broken, "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, dir, "", tt.args...); err == nil {
				t.Errorf("render %v expected error", tt.args)
			}
		})
	}
}

func TestRenderUsesConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "custom.yaml")
	content := `report:
  pageSize: a4
  school: Colegio Juárez
`
	if err := os.WriteFile(cfg, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, dir, closingJSON, "render", "-c", cfg, "-i", "-", "-o", "a4.pdf")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "a4.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	// A4 in points
	if !bytes.Contains(data, []byte("595.28 841.89")) {
		t.Error("PDF media box is not A4")
	}
}

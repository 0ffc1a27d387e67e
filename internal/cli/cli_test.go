package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rmaxseiner/drawerfinity/internal/project"
)

// runCmd executes a command with a quiet logger and captured stdout.
func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	ctx := withLogger(context.Background(), newLogger(io.Discard, charmlog.FatalLevel))
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

// newLayoutFile creates a layout file in a temp dir and redirects the app
// config home so tests never touch the real one.
func newLayoutFile(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "layout.json")
	_, err := runCmd(t, newNewCmd(), path,
		"--name", "workbench", "--drawer", "top left",
		"--width", "400", "--depth", "300", "--height", "80")
	if err != nil {
		t.Fatalf("failed to create layout: %v", err)
	}
	return path
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2024-01-01" {
		t.Errorf("date = %q, want %q", date, "2024-01-01")
	}
}

func TestGridCmd(t *testing.T) {
	out, err := runCmd(t, newGridCmd(), "100", "100")
	if err != nil {
		t.Fatalf("grid returned error: %v", err)
	}
	if !strings.Contains(out, "9 units (4 standard, 5 remainder)") {
		t.Errorf("unexpected summary line in output:\n%s", out)
	}
	if !strings.Contains(out, "remainder") {
		t.Errorf("expected remainder rows in output:\n%s", out)
	}
}

func TestGridCmd_InvalidDimensions(t *testing.T) {
	if _, err := runCmd(t, newGridCmd(), "0", "300"); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := runCmd(t, newGridCmd(), "abc", "300"); err == nil {
		t.Fatal("expected error for non-numeric width")
	}
}

func TestNewCmd(t *testing.T) {
	path := newLayoutFile(t)

	layout, err := project.LoadLayout(path)
	if err != nil {
		t.Fatalf("failed to load created layout: %v", err)
	}
	if layout.Name != "workbench" {
		t.Errorf("expected layout name 'workbench', got %q", layout.Name)
	}
	if layout.Drawer.Width != 400 || layout.Drawer.Depth != 300 {
		t.Errorf("unexpected drawer size: %.0f x %.0f", layout.Drawer.Width, layout.Drawer.Depth)
	}
	if len(layout.Bins) != 0 {
		t.Errorf("expected empty layout, got %d bins", len(layout.Bins))
	}
}

func TestNewCmd_RefusesOverwrite(t *testing.T) {
	path := newLayoutFile(t)

	_, err := runCmd(t, newNewCmd(), path, "--width", "200", "--depth", "200")
	if err == nil {
		t.Fatal("expected error for existing file")
	}
}

func TestNewCmd_RejectsTinyDrawer(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "tiny.json")

	_, err := runCmd(t, newNewCmd(), path, "--width", "5", "--depth", "300")
	if err == nil {
		t.Fatal("expected error for drawer below minimum width")
	}
}

func TestAddCmd_PlacesAndAdjusts(t *testing.T) {
	path := newLayoutFile(t)

	_, err := runCmd(t, newAddCmd(), path,
		"--label", "screws", "--x", "0", "--y", "0", "--width", "84", "--depth", "42")
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	layout, err := project.LoadLayout(path)
	if err != nil {
		t.Fatalf("failed to reload layout: %v", err)
	}
	if len(layout.Bins) != 1 {
		t.Fatalf("expected 1 bin, got %d", len(layout.Bins))
	}
	if layout.Bins[0].Label != "screws" {
		t.Errorf("expected label 'screws', got %q", layout.Bins[0].Label)
	}
	if layout.Bins[0].UnitWidth != 2 || layout.Bins[0].UnitDepth != 1 {
		t.Errorf("unexpected footprint: %dx%d", layout.Bins[0].UnitWidth, layout.Bins[0].UnitDepth)
	}
}

func TestAddCmd_RejectionLeavesFileUntouched(t *testing.T) {
	path := newLayoutFile(t)

	if _, err := runCmd(t, newAddCmd(), path,
		"--label", "screws", "--x", "0", "--y", "0", "--width", "84", "--depth", "42"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	// Overlapping placement must fail and not change the file
	_, err := runCmd(t, newAddCmd(), path,
		"--label", "dupe", "--x", "0", "--y", "0", "--width", "42", "--depth", "42")
	if err == nil {
		t.Fatal("expected overlap rejection")
	}

	layout, loadErr := project.LoadLayout(path)
	if loadErr != nil {
		t.Fatalf("failed to reload layout: %v", loadErr)
	}
	if len(layout.Bins) != 1 {
		t.Errorf("expected 1 bin after rejection, got %d", len(layout.Bins))
	}
}

func TestRemoveCmd(t *testing.T) {
	path := newLayoutFile(t)

	if _, err := runCmd(t, newAddCmd(), path,
		"--label", "screws", "--x", "0", "--y", "0", "--width", "42", "--depth", "42"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	layout, err := project.LoadLayout(path)
	if err != nil {
		t.Fatalf("failed to load layout: %v", err)
	}
	id := layout.Bins[0].ID

	if _, err := runCmd(t, newRemoveCmd(), path, id); err != nil {
		t.Fatalf("remove returned error: %v", err)
	}
	layout, err = project.LoadLayout(path)
	if err != nil {
		t.Fatalf("failed to reload layout: %v", err)
	}
	if len(layout.Bins) != 0 {
		t.Errorf("expected no bins after remove, got %d", len(layout.Bins))
	}

	// Unknown ID is a no-op, not an error
	if _, err := runCmd(t, newRemoveCmd(), path, "nope1234"); err != nil {
		t.Errorf("remove of unknown ID returned error: %v", err)
	}
}

func TestClearCmd(t *testing.T) {
	path := newLayoutFile(t)

	if _, err := runCmd(t, newAddCmd(), path,
		"--x", "0", "--y", "0", "--width", "42", "--depth", "42"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if _, err := runCmd(t, newClearCmd(), path); err != nil {
		t.Fatalf("clear returned error: %v", err)
	}

	layout, err := project.LoadLayout(path)
	if err != nil {
		t.Fatalf("failed to reload layout: %v", err)
	}
	if len(layout.Bins) != 0 {
		t.Errorf("expected no bins after clear, got %d", len(layout.Bins))
	}
}

func TestTemplateCmds(t *testing.T) {
	path := newLayoutFile(t)

	if _, err := runCmd(t, newAddCmd(), path,
		"--label", "screws", "--x", "0", "--y", "0", "--width", "84", "--depth", "42"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	if _, err := runCmd(t, newTemplateSaveCmd(), path, "--name", "workbench drawer"); err != nil {
		t.Fatalf("template save returned error: %v", err)
	}

	out, err := runCmd(t, newTemplateListCmd())
	if err != nil {
		t.Fatalf("template list returned error: %v", err)
	}
	if !strings.Contains(out, "workbench drawer") {
		t.Errorf("expected saved template in list:\n%s", out)
	}

	store, err := project.LoadTemplates(project.DefaultTemplatesPath())
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	if len(store.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(store.Templates))
	}
	id := store.Templates[0].ID

	applied := filepath.Join(t.TempDir(), "applied.json")
	if _, err := runCmd(t, newTemplateApplyCmd(), id, applied); err != nil {
		t.Fatalf("template apply returned error: %v", err)
	}
	layout, err := project.LoadLayout(applied)
	if err != nil {
		t.Fatalf("failed to load applied layout: %v", err)
	}
	if len(layout.Bins) != 1 || layout.Bins[0].Label != "screws" {
		t.Errorf("unexpected bins in applied layout: %+v", layout.Bins)
	}

	if _, err := runCmd(t, newTemplateRemoveCmd(), id); err != nil {
		t.Fatalf("template remove returned error: %v", err)
	}
	if _, err := runCmd(t, newTemplateRemoveCmd(), id); err == nil {
		t.Error("expected error removing an already removed template")
	}
}

func TestBackupCmds(t *testing.T) {
	newLayoutFile(t)

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	if _, err := runCmd(t, newBackupExportCmd(), backupPath); err != nil {
		t.Fatalf("backup export returned error: %v", err)
	}

	if _, err := runCmd(t, newBackupImportCmd(), backupPath); err != nil {
		t.Fatalf("backup import returned error: %v", err)
	}

	if _, err := runCmd(t, newBackupImportCmd(), filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error importing a missing backup file")
	}
}

func TestImportCmd_Bins(t *testing.T) {
	path := newLayoutFile(t)

	binsPath := filepath.Join(t.TempDir(), "bins.csv")
	content := "Label,X,Y,Width,Depth\nScrews,0,0,84,42\nEscapee,380,0,84,42\nDrivers,84,0,42,84\n"
	if err := os.WriteFile(binsPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write schedule: %v", err)
	}

	if _, err := runCmd(t, newImportCmd(), path, "--bins", binsPath); err != nil {
		t.Fatalf("import returned error: %v", err)
	}

	layout, err := project.LoadLayout(path)
	if err != nil {
		t.Fatalf("failed to reload layout: %v", err)
	}
	// The out-of-bounds row is skipped, the other two are placed
	if len(layout.Bins) != 2 {
		t.Errorf("expected 2 bins, got %d", len(layout.Bins))
	}
}

func TestImportCmd_RequiresExactlyOneSource(t *testing.T) {
	path := newLayoutFile(t)

	if _, err := runCmd(t, newImportCmd(), path); err == nil {
		t.Fatal("expected error when neither --bins nor --footprint is given")
	}
	if _, err := runCmd(t, newImportCmd(), path, "--bins", "a.csv", "--footprint", "b.dxf"); err == nil {
		t.Fatal("expected error when both sources are given")
	}
}

func TestPlatesCmd(t *testing.T) {
	path := newLayoutFile(t)

	out, err := runCmd(t, newPlatesCmd(), path, "--printer", "Ender 3 V2")
	if err != nil {
		t.Fatalf("plates returned error: %v", err)
	}
	if !strings.Contains(out, "Ender 3 V2") {
		t.Errorf("expected printer name in output:\n%s", out)
	}
	if !strings.Contains(out, "Bin height: 60 mm") {
		t.Errorf("expected bin height for 80 mm drawer in output:\n%s", out)
	}
	// 400 mm span on a 220 mm bed splits into 2 sections per axis
	if !strings.Contains(out, "4 sections") {
		t.Errorf("expected 4 sections in output:\n%s", out)
	}
}

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/rmaxseiner/drawerfinity/internal/grid"
	"github.com/rmaxseiner/drawerfinity/internal/model"
)

// buildTestLayout creates a realistic drawer layout for export testing.
func buildTestLayout(t *testing.T) (model.Layout, []model.Unit) {
	t.Helper()

	layout := model.NewLayout("workbench", model.Drawer{
		Name: "top left", Width: 400, Depth: 300, Height: 80,
	})
	layout.Bins = append(layout.Bins,
		model.NewPlacedBin("Screws", 84, 42, 0, 0),
		model.NewPlacedBin("Drivers", 42, 84, 84, 0),
		model.NewPlacedBin("Hex keys", 42, 42, 0, 42),
	)

	units, err := grid.Partition(layout.Drawer.Width, layout.Drawer.Depth)
	if err != nil {
		t.Fatalf("failed to partition drawer: %v", err)
	}
	return layout, units
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	layout, units := buildTestLayout(t)

	if err := ExportPDF(path, layout, units); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid two-page PDF should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_NoUnits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	layout, _ := buildTestLayout(t)

	if err := ExportPDF(path, layout, nil); err == nil {
		t.Fatal("expected error for empty unit list, got nil")
	}
}

func TestExportPDF_EmptyLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.pdf")
	layout, units := buildTestLayout(t)
	layout.Bins = nil

	if err := ExportPDF(path, layout, units); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	layout, _ := buildTestLayout(t)

	if err := ExportLabels(path, layout); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_NoBins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	layout, _ := buildTestLayout(t)
	layout.Bins = nil

	if err := ExportLabels(path, layout); err == nil {
		t.Fatal("expected error for layout without bins, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	layout, _ := buildTestLayout(t)

	labels := CollectLabelInfos(layout)
	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %d", len(labels))
	}
	if labels[0].BinLabel != "Screws" {
		t.Errorf("expected label 'Screws', got %q", labels[0].BinLabel)
	}
	if labels[0].UnitWidth != 2 || labels[0].UnitDepth != 1 {
		t.Errorf("unexpected footprint: %dx%d", labels[0].UnitWidth, labels[0].UnitDepth)
	}
	if labels[1].Drawer != "top left" {
		t.Errorf("expected drawer name on label, got %q", labels[1].Drawer)
	}

	// Labels round-trip through JSON for the QR payload
	data, err := json.Marshal(labels[0])
	if err != nil {
		t.Fatalf("failed to marshal label info: %v", err)
	}
	var decoded LabelInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal label info: %v", err)
	}
	if decoded != labels[0] {
		t.Errorf("label info changed in round trip: %+v != %+v", decoded, labels[0])
	}
}

func TestExportXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.xlsx")
	layout, units := buildTestLayout(t)

	if err := ExportXLSX(path, layout, units); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Bins")
	if err != nil {
		t.Fatalf("failed to read Bins sheet: %v", err)
	}
	if len(rows) != len(layout.Bins)+1 {
		t.Fatalf("expected %d rows, got %d", len(layout.Bins)+1, len(rows))
	}
	if rows[0][0] != "Label" {
		t.Errorf("expected header row, got %v", rows[0])
	}
	if rows[1][0] != "Screws" {
		t.Errorf("expected first bin 'Screws', got %q", rows[1][0])
	}

	gridRows, err := f.GetRows("Grid")
	if err != nil {
		t.Fatalf("failed to read Grid sheet: %v", err)
	}
	if len(gridRows) != len(units)+1 {
		t.Errorf("expected %d grid rows, got %d", len(units)+1, len(gridRows))
	}
}

func TestExportXLSX_NoUnits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.xlsx")
	layout, _ := buildTestLayout(t)

	if err := ExportXLSX(path, layout, nil); err == nil {
		t.Fatal("expected error for empty unit list, got nil")
	}
}

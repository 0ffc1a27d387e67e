package model

import "fmt"

// PrinterProfile defines the usable build volume of a 3D printer. Baseplates
// larger than the build plate are split into sections that each fit it.
type PrinterProfile struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BedWidth    float64 `json:"bed_width"` // mm
	BedDepth    float64 `json:"bed_depth"` // mm
	IsBuiltIn   bool    `json:"is_built_in"`
}

// Built-in printer profiles.
var PrinterProfiles = []PrinterProfile{
	{
		Name:        "Ender 3 V2",
		Description: "Creality Ender 3 V2 (220 x 220 build plate)",
		BedWidth:    220.0,
		BedDepth:    220.0,
		IsBuiltIn:   true,
	},
	{
		Name:        "Prusa MK4",
		Description: "Prusa MK4 / MK4S (250 x 210 build plate)",
		BedWidth:    250.0,
		BedDepth:    210.0,
		IsBuiltIn:   true,
	},
	{
		Name:        "Bambu Lab X1C",
		Description: "Bambu Lab X1 Carbon (256 x 256 build plate)",
		BedWidth:    256.0,
		BedDepth:    256.0,
		IsBuiltIn:   true,
	},
	{
		Name:        "Generic",
		Description: "Generic 220 x 220 build plate",
		BedWidth:    220.0,
		BedDepth:    220.0,
		IsBuiltIn:   true,
	},
}

// CustomPrinters holds user-defined printer profiles loaded at startup.
var CustomPrinters []PrinterProfile

// AllPrinters returns built-in profiles followed by custom ones.
func AllPrinters() []PrinterProfile {
	all := make([]PrinterProfile, 0, len(PrinterProfiles)+len(CustomPrinters))
	all = append(all, PrinterProfiles...)
	all = append(all, CustomPrinters...)
	return all
}

// GetPrinter returns a printer profile by name, or the Generic profile if
// not found.
func GetPrinter(name string) PrinterProfile {
	for _, p := range CustomPrinters {
		if p.Name == name {
			return p
		}
	}
	for _, p := range PrinterProfiles {
		if p.Name == name {
			return p
		}
	}
	return PrinterProfiles[len(PrinterProfiles)-1] // Generic (last one)
}

// GetPrinterNames returns the names of all available printer profiles.
func GetPrinterNames() []string {
	var names []string
	for _, p := range AllPrinters() {
		names = append(names, p.Name)
	}
	return names
}

// NewCustomPrinter creates a custom profile inheriting the Generic build
// volume.
func NewCustomPrinter(name string) PrinterProfile {
	p := GetPrinter("Generic")
	p.Name = name
	p.Description = ""
	p.IsBuiltIn = false
	return p
}

// AddCustomPrinter adds or updates a custom printer profile. Names of
// built-in profiles are rejected.
func AddCustomPrinter(p PrinterProfile) error {
	for _, builtin := range PrinterProfiles {
		if builtin.Name == p.Name {
			return fmt.Errorf("cannot override built-in printer %q", p.Name)
		}
	}
	p.IsBuiltIn = false
	for i, existing := range CustomPrinters {
		if existing.Name == p.Name {
			CustomPrinters[i] = p
			return nil
		}
	}
	CustomPrinters = append(CustomPrinters, p)
	return nil
}

// RemoveCustomPrinter removes a custom printer profile by name.
func RemoveCustomPrinter(name string) error {
	for _, builtin := range PrinterProfiles {
		if builtin.Name == name {
			return fmt.Errorf("cannot remove built-in printer %q", name)
		}
	}
	for i, p := range CustomPrinters {
		if p.Name == name {
			CustomPrinters = append(CustomPrinters[:i], CustomPrinters[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("printer %q not found", name)
}

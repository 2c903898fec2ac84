package propellants

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
)

type Propellant struct {
	ID              string  `json:"-"`
	Name            string  `json:"name"`
	Formula         string  `json:"formula"`
	Density         float64 `json:"density"`          // kg/m3
	BoilingPoint    float64 `json:"boiling_point"`    // K
	MolecularWeight float64 `json:"molecular_weight"` // g/mol
}

//go:embed propellants.yaml
var tableYAML []byte

var table = mustParse(tableYAML)

// Common names for the table entries
var aliases = map[string]string{
	"KEROSENE": "RP-1",
	"HYDROGEN": "LH2",
	"METHANE":  "LCH4",
	"OXYGEN":   "LOX",
}

// Parse reads a propellant table keyed by propellant ID
func Parse(data []byte) (t map[string]Propellant, err error) {
	if err = yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("propellant table: %w", err)
	}
	for id, p := range t {
		p.ID = id
		t[id] = p
	}
	return
}

func mustParse(data []byte) map[string]Propellant {
	t, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup matches an ID, an alias or a full name, ignoring case
func Lookup(name string) (p Propellant, ok bool) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if p, ok = table[key]; ok {
		return
	}
	if id, found := aliases[key]; found {
		p, ok = table[id]
		return
	}
	for _, prop := range table {
		if strings.EqualFold(prop.Name, strings.TrimSpace(name)) {
			return prop, true
		}
	}
	return
}

// Names returns the sorted propellant IDs
func Names() (names []string) {
	names = make([]string, 0, len(table))
	for id := range table {
		names = append(names, id)
	}
	sort.Strings(names)
	return
}

func (p Propellant) Print() {
	fmt.Printf("\"%s\"\t= %s\n", p.ID, p.Name)
	fmt.Printf("[%s]\t\t= Formula\n", p.Formula)
	fmt.Printf("%8.3f\t= Density (kg/m3)\n", p.Density)
	fmt.Printf("%8.3f\t= Boiling Point (K)\n", p.BoilingPoint)
	fmt.Printf("%8.3f\t= Molecular Weight (g/mol)\n", p.MolecularWeight)
}

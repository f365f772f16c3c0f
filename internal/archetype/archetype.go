// Package archetype holds the display records for the sixteen four-letter
// result codes.
package archetype

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/persona/internal/bank"
	"github.com/abhisek/persona/internal/i18n"
)

// Archetype is the bilingual card shown for a result code.
type Archetype struct {
	Code        string
	Name        i18n.Text
	Tagline     i18n.Text
	Description i18n.Text
	Traits      []i18n.Text
}

var byCode map[string]*Archetype

func init() {
	if err := validate(seedArchetypes); err != nil {
		panic(err)
	}
	byCode = make(map[string]*Archetype, len(seedArchetypes))
	for i := range seedArchetypes {
		byCode[seedArchetypes[i].Code] = &seedArchetypes[i]
	}
}

// Get returns the archetype for code, case-insensitively.
func Get(code string) (Archetype, error) {
	a, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Archetype{}, fmt.Errorf("unknown archetype code: %q", code)
	}
	out := *a
	out.Traits = slices.Clone(a.Traits)
	return out, nil
}

// All returns every archetype in catalog order.
func All() []Archetype {
	out := make([]Archetype, len(seedArchetypes))
	for i, a := range seedArchetypes {
		out[i] = a
		out[i].Traits = slices.Clone(a.Traits)
	}
	return out
}

// Codes enumerates all sixteen combinations of one letter per dimension,
// in dimension order.
func Codes() []string {
	codes := []string{""}
	for _, dim := range bank.AllDimensions() {
		first, second := dim.Letters()
		next := make([]string, 0, len(codes)*2)
		for _, c := range codes {
			next = append(next, c+string(first), c+string(second))
		}
		codes = next
	}
	return codes
}

func validate(archetypes []Archetype) error {
	var errs []string
	seen := make(map[string]bool, len(archetypes))
	for _, a := range archetypes {
		if seen[a.Code] {
			errs = append(errs, fmt.Sprintf("duplicate archetype %q", a.Code))
		}
		seen[a.Code] = true
		if !a.Name.Complete() || !a.Tagline.Complete() || !a.Description.Complete() {
			errs = append(errs, fmt.Sprintf("archetype %q is missing a translation", a.Code))
		}
		if len(a.Traits) == 0 {
			errs = append(errs, fmt.Sprintf("archetype %q has no trait tags", a.Code))
		}
	}
	for _, code := range Codes() {
		if !seen[code] {
			errs = append(errs, fmt.Sprintf("no archetype for code %q", code))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("archetype catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

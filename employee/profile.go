/*
profile.go - Administrative profile extraction

PURPOSE:
  Finds the employee's row in the administrative sheet and reads its
  attributes. This is the only strictly validated sheet: an empty sheet
  or a missing employee fails the whole lookup.

RESOLUTION ORDER (per attribute):
  1. Leftmost header containing any synonym (Arabic or English)
  2. A fixed column position from the canonical layout
  3. A default ("" or "0" for leave balances)

  A resolved column whose cell is empty also falls through to step 2.

IDENTITY:
  The identity column is the leftmost header containing "الرقم الوظيفي"
  or "ID", or column 0 if neither appears.

SEE ALSO:
  - keywords.go: Synonym lists and fixed positions
*/
package employee

import (
	"net/url"
	"strings"

	"github.com/warp/employee-portal/sheets"
)

const (
	avatarBaseURL  = "https://ui-avatars.com/api/"
	avatarFallback = "User"
)

// ExtractProfile returns the administrative profile of employee id.
func ExtractProfile(table sheets.Table, id string) (Profile, error) {
	if !table.HasData() {
		return Profile{}, ErrEmptyData
	}

	header := table.Header()
	idCol := sheets.FindAnyOf(header, adminIDKeywords...).Or(0)

	var row sheets.Row
	for _, r := range table.Data() {
		if r.Cell(idCol) == id {
			row = r
			break
		}
	}
	if row == nil {
		return Profile{}, &NotFoundError{ID: id}
	}

	p := Profile{ID: row.Cell(idCol)}
	for _, f := range profileFields {
		v := row.Cell(sheets.FindAnyOf(header, f.keywords...))
		if v == "" {
			v = row.Cell(f.position)
		}
		if v == "" {
			v = f.fallback
		}
		f.set(&p, v)
	}

	displayName := p.Name
	if displayName == "" {
		displayName = avatarFallback
	}
	p.AvatarURL = AvatarURL(displayName)

	return p, nil
}

// AvatarURL builds the avatar image URL for a display name.
func AvatarURL(name string) string {
	return avatarBaseURL + "?name=" + encodeURIComponent(name) + "&background=random"
}

// componentEscaper maps url.QueryEscape output to encodeURIComponent
// output: spaces as %20, and !'()* left literal.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

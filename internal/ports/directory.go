// Package ports holds the static UN/LOCODE directory of major ports the
// desk trades to. Lookups are in-memory; no external registry is
// consulted.
package ports

import (
	"sort"
	"strings"

	"sofdesk/internal/domain"
)

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Contact holds port authority contact details.
type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Port describes one directory entry.
type Port struct {
	UNLocode     string      `json:"un_locode"`
	Name         string      `json:"name"`
	Country      string      `json:"country"`
	Coordinates  Coordinates `json:"coordinates"`
	Facilities   []string    `json:"facilities"`
	MaxDraftM    float64     `json:"max_draft"`
	TidalRangeM  float64     `json:"tidal_range"`
	Restrictions []string    `json:"restrictions"`
	Contact      Contact     `json:"contact"`
}

var directory = map[string]Port{
	"SGSIN": {
		Name: "Singapore", Country: "Singapore",
		Coordinates:  Coordinates{1.2905, 103.8520},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal", "LNG Terminal"},
		MaxDraftM:    15.0, TidalRangeM: 2.5,
		Restrictions: []string{"VTS mandatory", "Pilot required"},
		Contact:      Contact{Phone: "+65 6321 0000", Email: "info@mpa.gov.sg"},
	},
	"INBOM": {
		Name: "Mumbai", Country: "India",
		Coordinates:  Coordinates{19.0760, 72.8777},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal"},
		MaxDraftM:    14.5, TidalRangeM: 4.5,
		Restrictions: []string{"Pilot required", "Tidal restrictions"},
		Contact:      Contact{Phone: "+91 22 2262 1818", Email: "info@mumbaiport.gov.in"},
	},
	"INMAA": {
		Name: "Chennai", Country: "India",
		Coordinates:  Coordinates{13.0827, 80.2707},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal"},
		MaxDraftM:    16.5, TidalRangeM: 1.2,
		Restrictions: []string{"Pilot required", "24/7 operations"},
		Contact:      Contact{Phone: "+91 44 2536 0000", Email: "info@chennaiport.gov.in"},
	},
	"INCCU": {
		Name: "Kolkata", Country: "India",
		Coordinates:  Coordinates{22.5726, 88.3639},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal"},
		MaxDraftM:    12.5, TidalRangeM: 4.2,
		Restrictions: []string{"Pilot required", "Tidal restrictions", "River navigation"},
		Contact:      Contact{Phone: "+91 33 2248 0000", Email: "info@kolkataport.gov.in"},
	},
	"INVIZ": {
		Name: "Vishakapatnam", Country: "India",
		Coordinates:  Coordinates{17.6868, 83.2185},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal", "Iron Ore Terminal"},
		MaxDraftM:    18.0, TidalRangeM: 1.8,
		Restrictions: []string{"Pilot required", "24/7 operations"},
		Contact:      Contact{Phone: "+91 891 256 0000", Email: "info@vizagport.gov.in"},
	},
	"NLRTM": {
		Name: "Rotterdam", Country: "Netherlands",
		Coordinates:  Coordinates{51.9225, 4.4792},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal", "LNG Terminal"},
		MaxDraftM:    24.0, TidalRangeM: 1.8,
		Restrictions: []string{"VTS mandatory", "Pilot required"},
		Contact:      Contact{Phone: "+31 10 252 1000", Email: "info@portofrotterdam.com"},
	},
	"CNSHA": {
		Name: "Shanghai", Country: "China",
		Coordinates:  Coordinates{31.2304, 121.4737},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal", "LNG Terminal"},
		MaxDraftM:    17.5, TidalRangeM: 4.5,
		Restrictions: []string{"VTS mandatory", "Pilot required", "Tidal restrictions"},
		Contact:      Contact{Phone: "+86 21 6329 0000", Email: "info@portshanghai.com.cn"},
	},
	"USLAX": {
		Name: "Los Angeles", Country: "United States",
		Coordinates:  Coordinates{34.0522, -118.2437},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal"},
		MaxDraftM:    16.0, TidalRangeM: 1.5,
		Restrictions: []string{"VTS mandatory", "Pilot required"},
		Contact:      Contact{Phone: "+1 310 732 7678", Email: "info@portoflosangeles.org"},
	},
	"USNYC": {
		Name: "New York", Country: "United States",
		Coordinates:  Coordinates{40.7128, -74.0060},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal"},
		MaxDraftM:    15.0, TidalRangeM: 1.4,
		Restrictions: []string{"VTS mandatory", "Pilot required", "Hudson River navigation"},
		Contact:      Contact{Phone: "+1 212 435 4600", Email: "info@nyc.gov"},
	},
	"DEHAM": {
		Name: "Hamburg", Country: "Germany",
		Coordinates:  Coordinates{53.5511, 9.9937},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal"},
		MaxDraftM:    15.5, TidalRangeM: 3.6,
		Restrictions: []string{"VTS mandatory", "Pilot required", "Elbe River navigation"},
		Contact:      Contact{Phone: "+49 40 37709 0", Email: "info@hafen-hamburg.de"},
	},
	"BEANR": {
		Name: "Antwerp", Country: "Belgium",
		Coordinates:  Coordinates{51.2194, 4.4025},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal", "Chemical Terminal"},
		MaxDraftM:    17.5, TidalRangeM: 5.0,
		Restrictions: []string{"VTS mandatory", "Pilot required", "Scheldt River navigation"},
		Contact:      Contact{Phone: "+32 3 205 2011", Email: "info@portofantwerp.com"},
	},
	"AEDXB": {
		Name: "Dubai", Country: "United Arab Emirates",
		Coordinates:  Coordinates{25.2048, 55.2708},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal", "LNG Terminal"},
		MaxDraftM:    16.0, TidalRangeM: 1.8,
		Restrictions: []string{"VTS mandatory", "Pilot required"},
		Contact:      Contact{Phone: "+971 4 881 0000", Email: "info@dpa.ae"},
	},
	"HKHKG": {
		Name: "Hong Kong", Country: "Hong Kong",
		Coordinates:  Coordinates{22.3193, 114.1694},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal"},
		MaxDraftM:    17.5, TidalRangeM: 2.0,
		Restrictions: []string{"VTS mandatory", "Pilot required"},
		Contact:      Contact{Phone: "+852 2852 4888", Email: "info@mardep.gov.hk"},
	},
	"JPTYO": {
		Name: "Tokyo", Country: "Japan",
		Coordinates:  Coordinates{35.6762, 139.6503},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal"},
		MaxDraftM:    16.0, TidalRangeM: 1.8,
		Restrictions: []string{"VTS mandatory", "Pilot required"},
		Contact:      Contact{Phone: "+81 3 5463 8000", Email: "info@tokyo-port.go.jp"},
	},
	"KRBUS": {
		Name: "Busan", Country: "South Korea",
		Coordinates:  Coordinates{35.1796, 129.0756},
		Facilities:   []string{"Container Terminal", "Bulk Terminal", "Oil Terminal"},
		MaxDraftM:    17.0, TidalRangeM: 1.5,
		Restrictions: []string{"VTS mandatory", "Pilot required"},
		Contact:      Contact{Phone: "+82 51 999 0000", Email: "info@busanpa.com"},
	},
}

// categories groups directory entries by dominant trade.
var categories = map[string][]string{
	"container": {"SGSIN", "NLRTM", "CNSHA", "USLAX", "USNYC", "DEHAM", "BEANR", "AEDXB", "HKHKG", "JPTYO", "KRBUS"},
	"bulk":      {"INBOM", "INMAA", "INCCU", "INVIZ", "NLRTM", "CNSHA", "USLAX", "USNYC", "DEHAM", "BEANR"},
	"oil":       {"SGSIN", "INBOM", "INMAA", "INCCU", "INVIZ", "NLRTM", "CNSHA", "USLAX", "USNYC", "DEHAM", "BEANR", "AEDXB"},
	"lng":       {"SGSIN", "NLRTM", "CNSHA", "AEDXB"},
	"chemical":  {"BEANR", "NLRTM", "CNSHA"},
}

// Lookup resolves a port by UN/LOCODE, exact name, substring, or any
// whole word of the query. Returns domain.ErrUnknownPort when nothing
// matches.
func Lookup(identifier string) (Port, error) {
	if p, ok := directory[strings.ToUpper(identifier)]; ok {
		p.UNLocode = strings.ToUpper(identifier)
		return p, nil
	}
	lower := strings.ToLower(identifier)
	for code, p := range directory {
		if strings.Contains(strings.ToLower(p.Name), lower) {
			p.UNLocode = code
			return p, nil
		}
	}
	for code, p := range directory {
		name := strings.ToLower(p.Name)
		for _, word := range strings.Fields(lower) {
			if strings.Contains(name, word) {
				p.UNLocode = code
				return p, nil
			}
		}
	}
	return Port{}, domain.ErrUnknownPort
}

// Position returns the coordinates for a port name or code.
func Position(identifier string) (Coordinates, error) {
	p, err := Lookup(identifier)
	if err != nil {
		return Coordinates{}, err
	}
	return p.Coordinates, nil
}

// FindAllInText scans free text for directory port names or codes and
// returns the matches in order of appearance. Used by the chat router
// to resolve ports mentioned in a question.
func FindAllInText(text string) []Port {
	lower := strings.ToLower(text)
	type hit struct {
		pos  int
		port Port
	}
	var hits []hit
	for code, p := range directory {
		pos := strings.Index(lower, strings.ToLower(p.Name))
		if pos < 0 {
			pos = strings.Index(lower, strings.ToLower(code))
		}
		if pos >= 0 {
			p.UNLocode = code
			hits = append(hits, hit{pos: pos, port: p})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	out := make([]Port, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.port)
	}
	return out
}

// ListByCategory returns the ports serving a trade category, or
// domain.ErrNotFound for an unknown category.
func ListByCategory(category string) ([]Port, error) {
	codes, ok := categories[strings.ToLower(category)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]Port, 0, len(codes))
	for _, code := range codes {
		p := directory[code]
		p.UNLocode = code
		out = append(out, p)
	}
	return out, nil
}

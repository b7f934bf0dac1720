// Package dehydrate builds the sparse update payload: only top-level sections
// that changed since hydration are sent, each JSON-encoded into one multipart
// form field. The granularity floor is the whole section.
package dehydrate

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"sort"
	"strconv"

	"tourdesk/form"
)

// Payload is the sparse multipart body keyed by section name.
type Payload struct {
	fields map[string]string
}

func (p Payload) Has(section string) bool {
	_, ok := p.fields[section]
	return ok
}

func (p Payload) Get(section string) string { return p.fields[section] }

func (p Payload) Len() int { return len(p.fields) }

// IsEmpty reports whether nothing beyond the identifier would be sent.
func (p Payload) IsEmpty() bool {
	n := p.Len()
	if p.Has("tourid") {
		n--
	}
	return n == 0
}

// Fields returns the form fields for transport (resty multipart map).
func (p Payload) Fields() map[string]string { return p.fields }

// Sections returns the section names in stable order.
func (p Payload) Sections() []string {
	out := make([]string, 0, len(p.fields))
	for k := range p.fields {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteMultipart writes the payload through a multipart writer in stable
// field order. The caller owns Close.
func (p Payload) WriteMultipart(w *multipart.Writer) error {
	for _, name := range p.Sections() {
		if err := w.WriteField(name, p.fields[name]); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}
	return nil
}

// Build compares the current form values against the originally hydrated
// snapshot and returns only the changed sections. The identifier is always
// included when the form edits an existing tour, because the server routes
// the request by it.
func Build(orig, cur form.TourForm) (Payload, error) {
	p := Payload{fields: make(map[string]string)}

	if cur.TourID != "" {
		p.fields["tourid"] = cur.TourID
	}

	// scalar sections, sent as plain string fields
	scalars := []struct {
		name      string
		orig, cur string
	}{
		{"title", orig.Title, cur.Title},
		{"code", orig.Code, cur.Code},
		{"excerpt", orig.Excerpt, cur.Excerpt},
		{"description", orig.Description, cur.Description},
		{"tourStatus", orig.TourStatus, cur.TourStatus},
		{"coverImage", orig.CoverImage, cur.CoverImage},
		{"file", orig.File, cur.File},
		{"outline", orig.Outline, cur.Outline},
		{"include", orig.Include, cur.Include},
		{"exclude", orig.Exclude, cur.Exclude},
		{"destination", orig.Destination, cur.Destination},
		{"map", orig.Map, cur.Map},
	}
	for _, s := range scalars {
		if s.orig != s.cur {
			p.fields[s.name] = s.cur
		}
	}

	// boolean flags compare by coerced-bool equality; the Flex decode already
	// collapsed "true"/true before hydration, so plain comparison is exact.
	if orig.Enquiry != cur.Enquiry {
		p.fields["enquiry"] = strconv.FormatBool(cur.Enquiry)
	}
	if orig.IsSpecialOffer != cur.IsSpecialOffer {
		p.fields["isSpecialOffer"] = strconv.FormatBool(cur.IsSpecialOffer)
	}

	// structured sections: any difference re-sends the whole section
	if !equalPricing(orig.Pricing, cur.Pricing) {
		if err := p.putJSON("pricing", cur.Pricing); err != nil {
			return p, err
		}
	}
	if !equalDates(orig.Dates, cur.Dates) {
		if err := p.putJSON("dates", cur.Dates); err != nil {
			return p, err
		}
	}
	if !equalItinerary(orig.Itinerary, cur.Itinerary) {
		if err := p.putJSON("itinerary", cur.Itinerary); err != nil {
			return p, err
		}
	}
	if !equalFacts(orig.Facts, cur.Facts) {
		if err := p.putJSON("facts", cur.Facts); err != nil {
			return p, err
		}
	}
	if !equalFAQs(orig.FAQs, cur.FAQs) {
		if err := p.putJSON("faqs", cur.FAQs); err != nil {
			return p, err
		}
	}
	if !equalCategories(orig.Category, cur.Category) {
		if err := p.putJSON("category", cur.Category); err != nil {
			return p, err
		}
	}
	if orig.Location != cur.Location {
		if err := p.putJSON("location", cur.Location); err != nil {
			return p, err
		}
	}

	return p, nil
}

// FullPayload serializes every section regardless of change, for create.
func FullPayload(cur form.TourForm) (Payload, error) {
	// diffing against the zero form marks everything present as changed
	p, err := Build(form.TourForm{}, cur)
	if err != nil {
		return p, err
	}
	// create must always carry the complete structured sections
	for name, v := range map[string]any{
		"pricing":   cur.Pricing,
		"dates":     cur.Dates,
		"itinerary": cur.Itinerary,
		"facts":     cur.Facts,
		"faqs":      cur.FAQs,
		"category":  cur.Category,
		"location":  cur.Location,
	} {
		if !p.Has(name) {
			if err := p.putJSON(name, v); err != nil {
				return p, err
			}
		}
	}
	p.fields["title"] = cur.Title
	p.fields["tourStatus"] = cur.TourStatus
	p.fields["enquiry"] = strconv.FormatBool(cur.Enquiry)
	p.fields["isSpecialOffer"] = strconv.FormatBool(cur.IsSpecialOffer)
	return p, nil
}

func (p Payload) putJSON(section string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode section %s: %w", section, err)
	}
	p.fields[section] = string(b)
	return nil
}

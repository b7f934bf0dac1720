package preview

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"tourdesk/dehydrate"
	"tourdesk/form"
)

func TestRenderNoChanges(t *testing.T) {
	color.NoColor = true

	orig := form.TourForm{TourID: "t1", Title: "Everest Base Camp"}
	p, err := dehydrate.Build(orig, orig)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, orig, p))
	require.Equal(t, "No changes.\n", buf.String())
}

func TestRenderShowsChangedSections(t *testing.T) {
	color.NoColor = true

	orig := form.TourForm{TourID: "t1", Title: "Everest Base Camp", Excerpt: "old"}
	cur := orig
	cur.Title = "Everest Base Camp Trek"
	cur.Pricing.Price = 1450

	p, err := dehydrate.Build(orig, cur)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, orig, p))
	out := buf.String()

	require.Contains(t, out, "— title")
	require.Contains(t, out, "— pricing")
	require.Contains(t, out, "Trek")
	require.Contains(t, out, "1450")
	require.NotContains(t, out, "— excerpt", "unchanged sections stay out of the preview")
	require.NotContains(t, out, "— tourid", "the identifier is not a diffable section")
}

package contentmodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryListsDependenciesFirst(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Registry() {
		for _, dep := range d.Dependencies {
			require.Truef(t, seen[dep], "%s depends on %s which is listed later", d.ID, dep)
		}
		require.Falsef(t, seen[d.ID], "duplicate registry id %s", d.ID)
		seen[d.ID] = true
	}
	assert.Len(t, seen, 14)
}

func TestRegistryDependenciesCoverLinkedTypes(t *testing.T) {
	for _, d := range Registry() {
		linked := map[string]bool{}
		for _, f := range d.Model.Fields {
			vs := f.Validations
			if f.Items != nil {
				vs = append(vs, f.Items.Validations...)
			}
			for _, v := range vs {
				for _, id := range v.LinkContentType {
					linked[id] = true
				}
			}
		}
		deps := map[string]bool{}
		for _, dep := range d.Dependencies {
			deps[dep] = true
		}
		assert.Equalf(t, linked, deps, "dependencies of %s", d.ID)
	}
}

func TestDisplayFieldExists(t *testing.T) {
	for _, d := range Registry() {
		_, ok := d.Model.Field(d.Model.DisplayField)
		assert.Truef(t, ok, "%s display field %q not defined", d.ID, d.Model.DisplayField)
	}
}

func TestLookupAndIDs(t *testing.T) {
	ct, ok := Lookup(HeroSectionID)
	require.True(t, ok)
	assert.Equal(t, "Hero Section", ct.Name)

	_, ok = Lookup("feature")
	assert.False(t, ok)

	ids := IDs()
	assert.Equal(t, DropdownItemID, ids[0])
	assert.Equal(t, FooterSectionID, ids[len(ids)-1])
}

func TestContentTypeWireShape(t *testing.T) {
	b, err := json.Marshal(CarouselSection)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.Equal(t, "title", wire["displayField"])

	fields := wire["fields"].([]any)
	slides := fields[2].(map[string]any)
	assert.Equal(t, "slides", slides["id"])
	assert.Equal(t, "Array", slides["type"])
	assert.Equal(t, map[string]any{"size": map[string]any{"min": 2.0, "max": 10.0}}, slides["validations"].([]any)[0])
	items := slides["items"].(map[string]any)
	assert.Equal(t, "Entry", items["linkType"])
}

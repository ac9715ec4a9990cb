package notion

import (
	"time"

	gnt "github.com/dstotijn/go-notion"
)

// Property builders, one per Notion value kind. Each returns a typed
// property value; empty optional input yields the zero property so every
// column is still present on the created page, reading as "no value".

func titleProp(text string) gnt.DatabasePageProperty {
	return gnt.DatabasePageProperty{
		Title: []gnt.RichText{{Text: &gnt.Text{Content: text}}},
	}
}

func richTextProp(text string) gnt.DatabasePageProperty {
	return gnt.DatabasePageProperty{
		RichText: []gnt.RichText{{Text: &gnt.Text{Content: text}}},
	}
}

func selectProp(name string) gnt.DatabasePageProperty {
	return gnt.DatabasePageProperty{
		Select: &gnt.SelectOptions{Name: name},
	}
}

func dateProp(t *time.Time) gnt.DatabasePageProperty {
	if t == nil {
		return gnt.DatabasePageProperty{}
	}
	dt := gnt.NewDateTime(*t, true)
	return gnt.DatabasePageProperty{
		Date: &gnt.Date{Start: dt},
	}
}

func urlProp(u string) gnt.DatabasePageProperty {
	if u == "" {
		return gnt.DatabasePageProperty{}
	}
	return gnt.DatabasePageProperty{URL: &u}
}

func emailProp(addr string) gnt.DatabasePageProperty {
	if addr == "" {
		return gnt.DatabasePageProperty{}
	}
	return gnt.DatabasePageProperty{Email: &addr}
}

func checkboxProp(v bool) gnt.DatabasePageProperty {
	return gnt.DatabasePageProperty{Checkbox: &v}
}

func relationProp(pageID string) gnt.DatabasePageProperty {
	if pageID == "" {
		return gnt.DatabasePageProperty{}
	}
	return gnt.DatabasePageProperty{
		Relation: []gnt.Relation{{ID: pageID}},
	}
}

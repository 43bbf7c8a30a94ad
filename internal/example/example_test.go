package example

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fieldmap"
	"github.com/signadot/fieldmap/encode"
	"github.com/signadot/fieldmap/ir"
	"github.com/signadot/fieldmap/parse"
)

func keys(node *ir.Node) []string {
	res := make([]string, len(node.Fields))
	for i, f := range node.Fields {
		res[i] = f.String
	}
	return res
}

func TestPersonScenario(t *testing.T) {
	p := DemoPerson()
	node, err := fieldmap.Encode(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"name", "age", "telphones", "relationships"}, keys(node)); diff != "" {
		t.Errorf("person keys (-want +got):\n%s", diff)
	}
	father := ir.Get(ir.Get(node, "relationships"), "father")
	if father == nil || father.Type != ir.ObjectType {
		t.Fatalf("relationships.father missing: %s", encode.MustString(node))
	}
	if diff := cmp.Diff([]string{"name", "age", "telphones", "money"}, keys(father)); diff != "" {
		t.Errorf("father keys (-want +got):\n%s", diff)
	}
	if got := ir.Get(father, "name").String; got != "父亲" {
		t.Errorf("father name %q", got)
	}

	p2, err := fieldmap.DecodeMove[Person](node)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p, p2); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if node.Type != ir.NullType {
		t.Errorf("consumed tree is %s", node.Type)
	}
}

func TestPersonDefaults(t *testing.T) {
	node, err := parse.ParseString(`{"name":"x","relationships":{"friend":{"name":"y"}}}`)
	if err != nil {
		t.Fatal(err)
	}
	p, err := fieldmap.Decode[Person](node)
	if err != nil {
		t.Fatal(err)
	}
	want := Person{
		Name: "x",
		Age:  100,
		Relationships: map[string]Person2{
			"friend": {Name: "y", Age: 100, Money: 3.1415926},
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPersonMismatch(t *testing.T) {
	node, err := parse.ParseString(`{"relationships":{"father":{"age":"old"}}}`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = fieldmap.Decode[Person](node)
	var te *fieldmap.TypeError
	if !errors.As(err, &te) || te.Path != "relationships.father.age" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestContactGenerated(t *testing.T) {
	c := Contact{
		Name:     "ann",
		Emails:   []string{"ann@example.com"},
		Labels:   map[string]string{"team": "core"},
		Priority: HighPriority,
		Verified: true,
		Seen:     map[int64]bool{1700000000: true},
		Owner:    DemoPerson().Relationships["mother"],
		Notes:    "not converted",
	}
	node, err := fieldmap.Encode(c)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"name", "emails", "labels", "priority", "verified", "seen", "owner"}, keys(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err := fieldmap.Decode[Contact](node)
	if err != nil {
		t.Fatal(err)
	}
	want := c
	want.Notes = ""
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestContactOwnerDefaults(t *testing.T) {
	node, err := parse.ParseString(`{"owner":{"name":"o"},"relationships":{"o":{"name":"o"}}}`)
	if err != nil {
		t.Fatal(err)
	}
	c, err := fieldmap.Decode[Contact](node)
	if err != nil {
		t.Fatal(err)
	}
	p, err := fieldmap.Decode[Person](node)
	if err != nil {
		t.Fatal(err)
	}
	want := Person2{Name: "o", Age: 100, Money: 3.1415926}
	if diff := cmp.Diff(want, c.Owner); diff != "" {
		t.Errorf("owner (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, p.Relationships["o"]); diff != "" {
		t.Errorf("relationship (-want +got):\n%s", diff)
	}
}

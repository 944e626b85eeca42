package layers_test

import (
	"fmt"
	"strings"

	"github.com/nanaki04/layers"
)

// ExampleDefine demonstrates binding a fixed sequence once and working with
// the bound Set.
func ExampleDefine() {
	groups := layers.MustDefine("background", "sprites", "ui")

	m := groups.MustEnable(layers.NewMask(), "ui")
	m = groups.MustEnable(m, "background")

	fmt.Println(m.Format())
	fmt.Println(groups.EnabledLayers(m))
	// Output:
	// 101
	// [background ui]
}

// ExampleEnabledLayers shows that the filter follows sequence order, not
// enable order.
func ExampleEnabledLayers() {
	seq := []string{"r", "g", "b", "a"}

	m := layers.NewMask()
	m, _ = layers.Enable(seq, m, "b")
	m, _ = layers.Enable(seq, m, "g")

	fmt.Println(layers.EnabledLayers(seq, m))
	fmt.Println(layers.DisabledLayers(seq, m))
	// Output:
	// [g b]
	// [r a]
}

// ExampleMapLayerOr shows the conditional transform with a fallback.
func ExampleMapLayerOr() {
	seq := []string{"dev", "prod"}
	m, _ := layers.Enable(seq, layers.NewMask(), "prod")

	upper := func(name string) string { return strings.ToUpper(name) }

	fmt.Println(layers.MapLayerOr(seq, m, "prod", "off", upper))
	fmt.Println(layers.MapLayerOr(seq, m, "dev", "off", upper))
	// Output:
	// PROD
	// off
}

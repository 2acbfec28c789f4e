package scriptdeps_test

import (
	"fmt"

	"github.com/scriptdeps/scriptdeps"
)

func Example() {
	// Register each module's source text with a [scriptdeps.Builder].  Dependencies are
	// declared with @require/@use markers in comment lines.
	b := scriptdeps.NewBuilder()
	b.AddSource(scriptdeps.NewModuleKey("foobar.js"), `
/**
 * @use foobar/foo.js
 */
foobar = {};
`)
	b.AddSource(scriptdeps.NewModuleKey("foobar/foo.js"), `
/**
 * @require foobar.js
 * @require vendor/jquery.js
 */
foobar.foo = function () {};
`)
	g := b.Graph()

	// Resolve the graph to a load order.
	order, err := scriptdeps.Resolve(g)
	if err != nil {
		panic(err)
	}
	fmt.Printf("load order: %v\n", order)

	// Dependencies on modules outside the graph are reported separately.
	for d := range g.ExternalDependencies() {
		fmt.Printf("external: %v\n", d)
	}

	// Output:
	// load order: [foobar.js foobar/foo.js]
	// external: @require vendor/jquery.js
}

// Package stylec compiles style declarations into atomic CSS.
//
// Every (property, condition, value) triple becomes one content-hashed
// single-purpose class, so identical declarations collapse to one rule no
// matter how many components use them. Cascade conflicts are resolved with
// numeric priorities baked into the stylesheet order instead of selector
// specificity.
//
// # Compiling
//
// Declarations live in *.style.yaml files and compile into a Manifest:
//
//	decls, err := stylec.LoadFiles([]string{"ui/**/*.style.yaml"}, logger)
//	compiler, err := stylec.NewCompiler(stylec.Options{}, logger)
//	for _, decl := range decls {
//		err = compiler.CompileModule(decl)
//	}
//	css := stylec.AssembleCSS(compiler.Manifest())
//
// # Resolving
//
// At render time, rule references merge last-wins per CSS property:
//
//	out := manifest.Resolve("app/button.base", "app/button.primary")
//	// out.Class: "x12ugx35 x8rzcol ..."
//
// Dynamic rules take arguments and contribute inline custom properties:
//
//	out := manifest.Resolve(stylec.Call{Key: "app/box.sized", Args: []any{"50%"}})
//	// out.StyleString(): "--1qsn3cs:50%"
//
// # CLI Tool
//
// stylec also provides a CLI. Install with:
//
//	go install github.com/yacobolo/stylec/cmd/stylec@latest
package stylec

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/stylec"
	"github.com/yacobolo/stylec/internal/report"
)

var compileCmd = &cobra.Command{
	Use:     "compile",
	Aliases: []string{"build"},
	Short:   "Compile declaration files into an atomic stylesheet",
	Long: `Load *.style.yaml declaration files, compile every module into atomic
classes, and write the assembled stylesheet. Optionally generates a Go
constants file so templates reference class strings through the type
system.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCompile,
}

func init() {
	f := compileCmd.Flags()
	f.StringSlice("include", nil, "Glob patterns for declaration files")
	f.String("out", "dist/styles.css", "Output stylesheet path")
	f.String("gen-go", "", "Write a Go constants file to this path ('' = skip)")
	f.String("package", "styles", "Package name for the generated Go file")
}

func runCompile(_ *cobra.Command, _ []string) error {
	quiet := getBoolWithFallback("quiet", "quiet", false)
	log := newLogger(getBoolWithFallback("verbose", "verbose", false))
	defer func() { _ = log.Sync() }()

	decls, err := stylec.LoadFiles(includePatterns(), log)
	if err != nil {
		return fmt.Errorf("loading declarations: %w", err)
	}

	compiler, err := stylec.NewCompiler(buildCompilerOptions(), log)
	if err != nil {
		return err
	}
	for _, decl := range decls {
		if err := compiler.CompileModule(decl); err != nil {
			return fmt.Errorf("compiling %s: %w", decl.Module, err)
		}
	}

	manifest := compiler.Manifest()
	css := stylec.AssembleCSS(manifest)

	outPath := getStringWithFallback("out", "compile.out", "dist/styles.css")
	if err := writeFile(outPath, []byte(css)); err != nil {
		return err
	}

	if genGo := getStringWithFallback("gen-go", "compile.gen-go", ""); genGo != "" {
		if err := writeConstants(genGo, manifest); err != nil {
			return err
		}
	}

	if !quiet {
		summary := report.Summarize(manifest)
		summary.FilesLoaded = len(decls)
		summary.OutputPath = outPath
		summary.OutputBytes = len(css)

		useColors := getBoolWithFallback("color", "color", false)
		report.NewReporter(os.Stdout, useColors).Print(summary)
	}

	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeConstants(path string, m *stylec.Manifest) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	opts := stylec.CodegenOptions{
		PackageName: getStringWithFallback("package", "compile.package", "styles"),
	}
	if err := stylec.WriteConstantsFile(f, m, opts); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// newLogger builds the CLI logger. Non-verbose runs log nothing; the
// summary reporter handles user-facing output.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

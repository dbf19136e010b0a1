// Command csscompress walks a directory tree minifying .css files, using a
// cobra.Command for its flag surface in the style of this pack's other CLI
// tools (_examples/jinterlante1206-AleutianLocal/cmd/aleutian).
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benbjohnson/css"
	"github.com/benbjohnson/css/internal/log"
	"github.com/benbjohnson/css/writer"
)

var (
	recursive            bool
	forceCompress        bool
	suffix               string
	sourceEncoding       string
	targetEncoding       string
	browserCompliantMode bool

	optimizedOutput       bool
	removeUnnecessaryCode bool
	indent                string
	quoteURLs             bool
	writeHeaderText       bool
	headerText            string
	css21Compat           bool

	writeNamespaceRules bool
	writeFontFaceRules  bool
	writeKeyframesRules bool
	writeMediaRules     bool
	writePageRules      bool
	writeViewportRules  bool
	writeSupportsRules  bool
	writeUnknownRules   bool
)

var rootCmd = &cobra.Command{
	Use:   "csscompress [directory]",
	Short: "Minify every .css file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompress,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&recursive, "recursive", true, "descend into subdirectories")
	flags.BoolVar(&forceCompress, "force-compress", false, "overwrite an existing minified sibling")
	flags.StringVar(&suffix, "suffix", ".min.css", "suffix appended to the minified sibling file")
	flags.StringVar(&sourceEncoding, "source-encoding", "", "fallback charset for files with no BOM or @charset rule")
	flags.StringVar(&targetEncoding, "target-encoding", "utf-8", "charset written for the minified output (utf-8 only is supported)")
	flags.BoolVar(&browserCompliantMode, "browser-compliant-mode", true, "tolerate and skip malformed constructs instead of aborting")

	flags.BoolVar(&optimizedOutput, "optimized-output", true, "omit optional whitespace and trailing semicolons")
	flags.BoolVar(&removeUnnecessaryCode, "remove-unnecessary-code", true, "omit empty rule bodies and declaration blocks")
	flags.StringVar(&indent, "indent", "  ", "indentation string when optimized-output is false")
	flags.BoolVar(&quoteURLs, "quote-urls", false, "force url(...) tokens to be quoted")
	flags.BoolVar(&writeHeaderText, "write-header-text", false, "emit header-text as a banner comment before any rule")
	flags.StringVar(&headerText, "header-text", "", "banner comment text")
	flags.BoolVar(&css21Compat, "css21-compat", false, "fail on any CSS3-only construct instead of emitting it")

	flags.BoolVar(&writeNamespaceRules, "write-namespace-rules", true, "emit @namespace rules")
	flags.BoolVar(&writeFontFaceRules, "write-font-face-rules", true, "emit @font-face rules")
	flags.BoolVar(&writeKeyframesRules, "write-keyframes-rules", true, "emit @keyframes rules")
	flags.BoolVar(&writeMediaRules, "write-media-rules", true, "emit @media rules")
	flags.BoolVar(&writePageRules, "write-page-rules", true, "emit @page rules")
	flags.BoolVar(&writeViewportRules, "write-viewport-rules", true, "emit @viewport rules")
	flags.BoolVar(&writeSupportsRules, "write-supports-rules", true, "emit @supports rules")
	flags.BoolVar(&writeUnknownRules, "write-unknown-rules", true, "emit unrecognized at-rules literally")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCompress(cmd *cobra.Command, args []string) error {
	root := args[0]
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("csscompress: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("csscompress: %s is not a directory", root)
	}

	settings := css.DefaultSettings()
	settings.FallbackCharset = sourceEncoding
	settings.BrowserCompliant = browserCompliantMode
	settings.Writer = writer.Settings{
		OptimizedOutput:       optimizedOutput,
		RemoveUnnecessaryCode: removeUnnecessaryCode,
		Indent:                indent,
		QuoteURLs:             quoteURLs,
		WriteHeaderText:       writeHeaderText,
		HeaderText:            headerText,
		Css21Compat:           css21Compat,
		WriteNamespaceRules:   writeNamespaceRules,
		WriteFontFaceRules:    writeFontFaceRules,
		WriteKeyframesRules:   writeKeyframesRules,
		WriteMediaRules:       writeMediaRules,
		WritePageRules:        writePageRules,
		WriteViewportRules:    writeViewportRules,
		WriteSupportsRules:    writeSupportsRules,
		WriteUnknownRules:     writeUnknownRules,
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warnf("csscompress: %s: %s", path, err)
			return nil
		}
		if d.IsDir() {
			if !recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".css") || strings.HasSuffix(path, suffix) {
			return nil
		}
		minPath := strings.TrimSuffix(path, ".css") + suffix
		if !forceCompress {
			if _, err := os.Stat(minPath); err == nil {
				return nil
			}
		}
		if err := compressFile(path, minPath, settings); err != nil {
			log.Warnf("csscompress: %s: %s", path, err)
		}
		return nil
	})
}

func compressFile(path, minPath string, settings css.Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ss, err := css.ReadStylesheet(data, settings)
	if err != nil && (ss == nil || !settings.BrowserCompliant) {
		return err
	}
	out, err := css.WriteCSS(ss, settings)
	if err != nil {
		return err
	}
	return os.WriteFile(minPath, []byte(out), 0o644)
}

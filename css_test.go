package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/css"
)

func TestReadStylesheet_WriteCSS_Roundtrip(t *testing.T) {
	src := []byte("div.box { color: red; width: calc(100% - 10px); }\n")
	ss, err := css.ReadStylesheet(src, css.DefaultSettings())
	require.NoError(t, err)
	require.Len(t, ss.Rules, 1)

	settings := css.DefaultSettings()
	settings.Writer.OptimizedOutput = true
	out, err := css.WriteCSS(ss, settings)
	require.NoError(t, err)
	assert.Equal(t, "div.box{color:red;width:calc(100% - 10px)}", out)
}

func TestReadStylesheet_CharsetBOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("p { margin: 0; }")...)
	ss, err := css.ReadStylesheet(src, css.DefaultSettings())
	require.NoError(t, err)
	require.Len(t, ss.Rules, 1)
}

func TestReadDeclarationList(t *testing.T) {
	decls, err := css.ReadDeclarationList([]byte("color: blue; display: none"), css.DefaultSettings())
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "color", decls[0].Name)
}

func TestReadStylesheet_UnterminatedNestedBlock(t *testing.T) {
	src := []byte(`.class{color:red;.class{color:green}.class{color:blue}`)

	tolerant := css.DefaultSettings()
	tolerant.BrowserCompliant = true
	ss, err := css.ReadStylesheet(src, tolerant)
	require.Error(t, err) // the malformed nested block is still a reported recoverable error
	tolerant.Writer.OptimizedOutput = true
	out, err := css.WriteCSS(ss, tolerant)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	strict := css.DefaultSettings()
	strict.BrowserCompliant = false
	ss, err = css.ReadStylesheet(src, strict)
	require.Error(t, err)
	strict.Writer.OptimizedOutput = true
	out, err = css.WriteCSS(ss, strict)
	require.NoError(t, err)
	assert.Equal(t, ".class{color:red}.class{color:blue}", out)
}

func TestWriteCSS_Css21CompatRejectsKeyframes(t *testing.T) {
	ss, err := css.ReadStylesheet([]byte("@keyframes spin { from { opacity: 0; } to { opacity: 1; } }"), css.DefaultSettings())
	require.NoError(t, err)

	settings := css.DefaultSettings()
	settings.Writer.Css21Compat = true
	_, err = css.WriteCSS(ss, settings)
	require.Error(t, err)
}

package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pxp-lang/statan/analyzer"
)

func TestResolve_AlreadyQualified(t *testing.T) {
	got := analyzer.Resolve([]byte(`\App\Foo`), []byte(`\App`), nil, nil)
	assert.Equal(t, `\App\Foo`, string(got))
}

func TestResolve_EnclosingClass(t *testing.T) {
	got := analyzer.Resolve([]byte("Foo"), []byte(`\App`), nil, []byte("Foo"))
	assert.Equal(t, `\App\Foo`, string(got))
}

func TestResolve_ImportSuffixMatch(t *testing.T) {
	imports := [][]byte{[]byte(`\App\Models\User`)}
	got := analyzer.Resolve([]byte("User"), []byte(`\App\Controllers`), imports, nil)
	assert.Equal(t, `\App\Models\User`, string(got))
}

func TestResolve_ImportPriorityFirstDeclaredWins(t *testing.T) {
	imports := [][]byte{
		[]byte(`\App\Models\User`),
		[]byte(`\App\Legacy\User`),
	}
	got := analyzer.Resolve([]byte("User"), []byte(`\App`), imports, nil)
	assert.Equal(t, `\App\Models\User`, string(got))
}

func TestResolve_NamespacedImportRewritesHead(t *testing.T) {
	imports := [][]byte{[]byte(`\Vendor\Pkg\Sub`)}
	got := analyzer.Resolve([]byte(`Sub\Thing`), []byte(`\App`), imports, nil)
	assert.Equal(t, `\Vendor\Pkg\Sub\Thing`, string(got))
}

func TestResolve_FallsBackToNamespace(t *testing.T) {
	got := analyzer.Resolve([]byte("Helper"), []byte(`\App\Util`), nil, nil)
	assert.Equal(t, `\App\Util\Helper`, string(got))
}

func TestResolve_RootNamespace(t *testing.T) {
	got := analyzer.Resolve([]byte("Helper"), []byte(``), nil, nil)
	assert.Equal(t, `\Helper`, string(got))
}

// Resolver idempotence: resolve(resolve(n, ctx), ctx) = resolve(n, ctx) for
// every name and context, since a canonical (leading-separator) name is
// always returned unchanged.
func TestResolve_Idempotent(t *testing.T) {
	namespace := []byte(`\App\Sub`)
	imports := [][]byte{[]byte(`\App\Models\User`)}

	cases := [][]byte{
		[]byte("Foo"),
		[]byte(`\Already\Qualified`),
		[]byte("User"),
		[]byte(`Sub\Thing`),
	}

	for _, name := range cases {
		once := analyzer.Resolve(name, namespace, imports, nil)
		twice := analyzer.Resolve(once, namespace, imports, nil)
		require.Equal(t, string(once), string(twice), "not idempotent for %q", name)
	}
}

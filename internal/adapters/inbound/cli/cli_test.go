package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/partsdesk/partsdesk/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
  {"id": 0, "name": "Brake pad", "description": "Front pads", "price": 10, "category": "Brakes", "inventory": 5, "compatible_vehicles": ["Corolla"]},
  {"id": 1, "name": "Oil filter", "description": "Spin-on", "price": 5.25, "category": "Engine", "inventory": 3, "compatible_vehicles": []}
]`

// storeDir creates a store directory whose config points at a local feed.
func storeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(catalogJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".partsdesk.yaml"), []byte("feed_path: products.json\n"), 0o644))
	return dir
}

type result struct {
	out, errOut string
	err         error
}

func execute(stdin string, args ...string) result {
	cmd := cli.NewRootCmdForTest()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func TestVersion(t *testing.T) {
	r := execute("", "version")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "partsdesk dev")
}

func TestFeed_Text(t *testing.T) {
	r := execute("", "feed", "--path", storeDir(t))
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "Brake pad")
	assert.Contains(t, r.out, "Oil filter")
}

func TestFeed_JSON(t *testing.T) {
	r := execute("", "feed", "--json", "--path", storeDir(t))
	require.NoError(t, r.err)

	var products []map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.out), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Oil filter", products[1]["name"])
	assert.Equal(t, "5.25", products[1]["price"])
}

func TestFeed_MissingFile(t *testing.T) {
	dir := storeDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "products.json")))

	r := execute("", "feed", "--path", dir)
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "loading product feed")
}

func TestRun_ExitSaves(t *testing.T) {
	dir := storeDir(t)
	r := execute("7\n", "run", "--path", dir)
	require.NoError(t, r.err)

	assert.Contains(t, r.out, "2 products loaded from")
	assert.Contains(t, r.out, "Saved")
	for _, name := range []string{"clientes.json", "productos.json", "ventas.json", "envios.json", "pagos.json", "snapshot.json"} {
		assert.FileExists(t, filepath.Join(dir, "data", name))
	}
}

func TestRun_ClosedInputDiscards(t *testing.T) {
	dir := storeDir(t)
	r := execute("", "run", "--path", dir)
	require.NoError(t, r.err)

	assert.Contains(t, r.errOut, "discarded without saving")
	assert.NoDirExists(t, filepath.Join(dir, "data"))
}

func TestRun_FeedFailureStartsNothing(t *testing.T) {
	dir := storeDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(`{"not": "a list"}`), 0o644))

	r := execute("7\n", "run", "--path", dir)
	require.Error(t, r.err)
	assert.NotContains(t, r.out, "Main menu")
	assert.NoDirExists(t, filepath.Join(dir, "data"))
}

func TestReport_AfterSession(t *testing.T) {
	dir := storeDir(t)
	session := strings.Join([]string{
		"3", "2", "ana@example.com", "Av. Bolivar 12", "04141234567", "Ana Perez", "1234567", "7",
		"2", "1", "1", "1", "2", "n", "4", "1", "y", "4",
		"7",
	}, "\n") + "\n"
	require.NoError(t, execute(session, "run", "--path", dir).err)

	r := execute("", "report", "--json", "--path", dir)
	require.NoError(t, r.err)

	var stats map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.out), &stats))
	assert.Equal(t, float64(1), stats["sales_count"])

	r = execute("", "report", "--path", dir)
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "Statistics")
}

func TestReport_NothingSaved(t *testing.T) {
	r := execute("", "report", "--path", storeDir(t))
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "no saved session")
}

func TestReport_History(t *testing.T) {
	dir := storeDir(t)
	require.NoError(t, execute("7\n", "run", "--path", dir).err)
	require.NoError(t, execute("7\n", "run", "--path", dir).err)

	r := execute("", "report", "--history", "--json", "--path", dir)
	require.NoError(t, r.err)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.out), &entries))
	assert.Len(t, entries, 2)

	r = execute("", "report", "--history", "--path", dir)
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "Save History")
}

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/comanda/comanda/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, out, "Pedido #1 creado")
	assert.Contains(t, out, "Pedido #2 creado")
	assert.Contains(t, out, "Plato Principal: Pizza Margherita (con extra queso) (con extra salsa Picante)")
	assert.Contains(t, out, `Notificación para "Ana"`)
	assert.Contains(t, out, `Cliente "Juan" ya no observa el pedido 1`)
	assert.Contains(t, out, "$21.00")
	assert.Contains(t, out, "ENTREGADO")
}

func TestDemoCommand_JSON(t *testing.T) {
	out, err := execute(t, "demo", t.TempDir(), "--json")
	require.NoError(t, err)

	assert.Contains(t, out, `"events"`)
	assert.Contains(t, out, `"customer_notified"`)
	assert.Contains(t, out, `"order_detail"`)
}

func TestDemoCommand_ScenarioOverride(t *testing.T) {
	dir := t.TempDir()
	scenario := `title: Mi escenario
orders:
  - observers: [Rosa]
    items:
      - kind: postre
        name: Churros
        price: "3.00"
    steps:
      - state: entregado
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".comanda.yaml"), []byte(scenario), 0644))

	out, err := execute(t, "demo", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Mi escenario")
	assert.Contains(t, out, "Postre: Churros")
	assert.Contains(t, out, `Notificación para "Rosa"`)
	assert.NotContains(t, out, "Pizza Margherita")
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escenario.yaml")
	scenario := `title: Pedido rápido
orders:
  - observers: [Leo]
    items:
      - kind: bebida
        name: Mate
        price: "1.75"
    steps:
      - state: en_preparacion
      - state: cancelado
`
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0644))

	out, err := execute(t, "run", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Pedido rápido")
	assert.Contains(t, out, "CANCELADO")
	assert.Contains(t, out, "$1.75")
}

func TestRunCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "no-existe.yaml"))
	assert.Error(t, err)
}

func TestRunCommand_InvalidScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalido.yaml")
	bad := `orders:
  - items:
      - kind: sopa
        name: Gazpacho
        price: "4.00"
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

	_, err := execute(t, "run", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sopa")
}

func TestMenuCommand(t *testing.T) {
	out, err := execute(t, "menu", t.TempDir())
	require.NoError(t, err)

	assert.Contains(t, out, "Plato Principal: Pizza Margherita (con extra queso) (con extra salsa Picante)")
	assert.Contains(t, out, "$14.75")
	assert.Contains(t, out, "Bebida: Refresco de Cola")
	assert.Contains(t, out, "$2.00")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "comanda")
}

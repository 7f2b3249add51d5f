package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"transaction-importer/internal/services"
	"transaction-importer/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLedger(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_ListsSubcommands(t *testing.T) {
	out, err := runLedger(t, "--help")
	require.NoError(t, err)

	for _, name := range []string{"serve", "import", "migrate", "generate"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "completion")
}

func TestImportCommand_RequiresPath(t *testing.T) {
	_, err := runLedger(t, "import")
	assert.Error(t, err)
}

func TestGenerateCommand_Stdout(t *testing.T) {
	out, err := runLedger(t, "generate", "--rows", "5", "--seed", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "title,type,value,category", lines[0])
}

func TestGenerateCommand_Stage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STAGING_DIR", dir)

	out, err := runLedger(t, "generate", "--rows", "3", "--seed", "9", "--stage")
	require.NoError(t, err)

	relativePath := strings.TrimSpace(out)
	assert.True(t, strings.HasSuffix(relativePath, "-sample.csv"))

	content, err := os.ReadFile(filepath.Join(dir, relativePath))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(content), "\n"))
}

func TestRunImport_PrintsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	importService := service_mocks.NewMockImportServiceInterface(ctrl)
	importService.EXPECT().
		ImportTransactions(gomock.Any(), "january.csv").
		DoAndReturn(func(ctx context.Context, _ string) (*services.ImportResult, error) {
			return &services.ImportResult{RowsRead: 3, RowsSkipped: 1, CategoriesCreated: 2}, nil
		})

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, runImport(cmd, importService, "january.csv"))
	assert.JSONEq(t, `{"rowsRead":3,"rowsSkipped":1,"categoriesCreated":2,"categoriesReused":0,"fileRemoved":true}`, out.String())
}

func TestRunImport_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	importService := service_mocks.NewMockImportServiceInterface(ctrl)
	importService.EXPECT().
		ImportTransactions(gomock.Any(), "january.csv").
		Return(nil, errors.New("file not found in staging directory"))

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	err := runImport(cmd, importService, "january.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "importing january.csv")
}

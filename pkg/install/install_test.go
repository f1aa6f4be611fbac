package install

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hearth/pkg/backup"
	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/source"
	"github.com/arthur-debert/hearth/pkg/testutil"
	"github.com/arthur-debert/hearth/pkg/ui/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	env     *testutil.TestEnvironment
	fetcher *testutil.FakeFetcher
	backup  *backup.Manager
	out     *bytes.Buffer
}

func newFixture(t *testing.T, envType testutil.EnvType) *fixture {
	env := testutil.NewTestEnvironment(t, envType)
	out := &bytes.Buffer{}
	return &fixture{
		env:     env,
		fetcher: testutil.NewFakeFetcher(t, env.FS),
		backup:  backup.NewManager(env.FS, env.Paths, output.NewReporter(out)),
		out:     out,
	}
}

func (f *fixture) installer(strict bool) *Installer {
	reporter := output.NewReporter(f.out)
	resolver := source.NewResolver(source.Options{
		FileSystem:  f.env.FS,
		Paths:       f.env.Paths,
		Fetcher:     f.fetcher,
		Prompter:    testutil.NewScriptedPrompter(),
		Reporter:    reporter,
		StrictFetch: strict,
	})
	return New(Options{
		FileSystem: f.env.FS,
		Paths:      f.env.Paths,
		Resolver:   resolver,
		Backup:     f.backup,
		Reporter:   reporter,
	})
}

func TestInstall_CopiesFilesAndTrees(t *testing.T) {
	f := newFixture(t, testutil.EnvMemoryOnly)
	src := f.env.WithSource("alice_dots", testutil.FileTree{
		".bashrc": "export EDITOR=vim",
		".config": testutil.FileTree{"git": testutil.FileTree{"config": "[user]"}},
	})

	result := f.installer(false).Install(src, f.env.HomeDir, []string{".bashrc", ".config"}, false)

	assert.Empty(t, result.Failed())
	assert.Len(t, result.Succeeded(), 2)
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(f.env.HomeDir, ".bashrc"), "export EDITOR=vim")
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(f.env.HomeDir, ".config", "git", "config"), "[user]")
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(src, ".bashrc"), "export EDITOR=vim")
	assert.Contains(t, f.out.String(), "Copying "+filepath.Join(src, ".bashrc"))
}

func TestInstall_OverwritesFiles(t *testing.T) {
	f := newFixture(t, testutil.EnvMemoryOnly)
	f.env.WithHomeFiles(testutil.FileTree{".vimrc": "old"})
	src := f.env.WithSource("alice_dots", testutil.FileTree{".vimrc": "new"})

	result := f.installer(false).Install(src, f.env.HomeDir, []string{".vimrc"}, false)

	assert.Empty(t, result.Failed())
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(f.env.HomeDir, ".vimrc"), "new")
}

func TestInstall_PartialFailureIsolation(t *testing.T) {
	f := newFixture(t, testutil.EnvMemoryOnly)
	f.env.WithHomeFiles(testutil.FileTree{
		".vim": testutil.FileTree{"existing.vim": "keep"},
	})
	src := f.env.WithSource("alice_dots", testutil.FileTree{
		".vim":    testutil.FileTree{"plugin.vim": "p"},
		".bashrc": "b",
		".zshrc":  "z",
	})

	result := f.installer(false).Install(src, f.env.HomeDir, []string{".vim", ".bashrc", ".zshrc"}, false)

	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, ".vim", failed[0].Name)
	assert.True(t, errors.IsErrorCode(failed[0].Err, errors.ErrCopy))
	assert.Len(t, result.Succeeded(), 2)

	testutil.AssertFileContent(t, f.env.FS, filepath.Join(f.env.HomeDir, ".bashrc"), "b")
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(f.env.HomeDir, ".zshrc"), "z")
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(f.env.HomeDir, ".vim", "existing.vim"), "keep")
	testutil.AssertNotExists(t, f.env.FS, filepath.Join(f.env.HomeDir, ".vim", "plugin.vim"))
	assert.Contains(t, f.out.String(), "Could not copy "+filepath.Join(src, ".vim"))
}

func TestInstall_MissingSourceEntryFails(t *testing.T) {
	f := newFixture(t, testutil.EnvMemoryOnly)
	src := f.env.WithSource("alice_dots", testutil.FileTree{})

	result := f.installer(false).Install(src, f.env.HomeDir, []string{".gone"}, false)

	require.Len(t, result.Failed(), 1)
}

func TestInstall_BacksUpOnFirstRun(t *testing.T) {
	f := newFixture(t, testutil.EnvIsolated)
	f.env.WithHomeFiles(testutil.FileTree{
		".bashrc": "mine",
		".vim":    testutil.FileTree{"old.vim": "o"},
	})
	src := f.env.WithSource("alice_dots", testutil.FileTree{
		".bashrc": "theirs",
		".vim":    testutil.FileTree{"new.vim": "n"},
		".zshrc":  "z",
	})
	first, err := f.backup.EnsureInitialized()
	require.NoError(t, err)
	require.True(t, first)

	result := f.installer(false).Install(src, f.env.HomeDir, []string{".bashrc", ".vim", ".zshrc"}, true)

	assert.Empty(t, result.Failed())
	assert.Equal(t, 2, result.BackedUp())

	backupDir := f.env.Paths.BackupDir()
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(backupDir, ".bashrc"), "mine")
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(backupDir, ".vim", "old.vim"), "o")
	testutil.AssertNotExists(t, f.env.FS, filepath.Join(backupDir, ".zshrc"))

	testutil.AssertFileContent(t, f.env.FS, filepath.Join(f.env.HomeDir, ".bashrc"), "theirs")
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(f.env.HomeDir, ".vim", "new.vim"), "n")
	testutil.AssertNotExists(t, f.env.FS, filepath.Join(f.env.HomeDir, ".vim", "old.vim"))
}

func TestUninstall(t *testing.T) {
	f := newFixture(t, testutil.EnvMemoryOnly)
	f.env.WithHomeFiles(testutil.FileTree{
		".bashrc": "b",
		".vim":    testutil.FileTree{"colors": testutil.FileTree{"x.vim": ""}},
	})
	inst := f.installer(false)

	require.NoError(t, inst.Uninstall(filepath.Join(f.env.HomeDir, ".bashrc")))
	require.NoError(t, inst.Uninstall(filepath.Join(f.env.HomeDir, ".vim")))

	testutil.AssertNotExists(t, f.env.FS, filepath.Join(f.env.HomeDir, ".bashrc"))
	testutil.AssertNotExists(t, f.env.FS, filepath.Join(f.env.HomeDir, ".vim"))
	assert.Contains(t, f.out.String(), "Deleting "+filepath.Join(f.env.HomeDir, ".vim"))
}

func TestUninstallAll_ContinuesPastFailures(t *testing.T) {
	f := newFixture(t, testutil.EnvMemoryOnly)
	f.env.WithHomeFiles(testutil.FileTree{".a": "", ".c": ""})

	result := f.installer(false).UninstallAll([]string{".a", ".b", ".c"}, f.env.HomeDir)

	require.Len(t, result.Failed(), 1)
	assert.Equal(t, ".b", result.Failed()[0].Name)
	assert.True(t, errors.IsErrorCode(result.Failed()[0].Err, errors.ErrDelete))
	testutil.AssertNotExists(t, f.env.FS, filepath.Join(f.env.HomeDir, ".a"))
	testutil.AssertNotExists(t, f.env.FS, filepath.Join(f.env.HomeDir, ".c"))
}

func TestInstallSubDependencies(t *testing.T) {
	f := newFixture(t, testutil.EnvMemoryOnly)
	src := f.env.WithSource("alice_dots", testutil.FileTree{
		".vim": testutil.FileTree{"bundle": testutil.FileTree{
			"packages": "https://github.com/tpope/vim-fugitive.git\n\n# comment\nnotalink\n  https://github.com/preservim/nerdtree  \n",
		}},
	})
	f.fetcher.WithRepo("https://github.com/tpope/vim-fugitive.git", testutil.FileTree{"plugin": testutil.FileTree{"fugitive.vim": "f"}})

	fetched, err := f.installer(false).InstallSubDependencies(context.Background(), src)
	require.NoError(t, err)

	bundle := filepath.Join(src, ".vim", "bundle")
	require.Len(t, fetched, 2)
	assert.Equal(t, filepath.Join(bundle, "tpope_vim-fugitive"), fetched[0].Dir)
	assert.Equal(t, filepath.Join(bundle, "preservim_nerdtree"), fetched[1].Dir)
	assert.Equal(t, "https://github.com/preservim/nerdtree", fetched[1].Identifier)
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(bundle, "tpope_vim-fugitive", "plugin", "fugitive.vim"), "f")

	calls := f.fetcher.Calls()
	require.Len(t, calls, 2)
}

func TestInstallSubDependencies_NoManifest(t *testing.T) {
	f := newFixture(t, testutil.EnvMemoryOnly)
	src := f.env.WithSource("alice_dots", testutil.FileTree{".vimrc": ""})

	fetched, err := f.installer(false).InstallSubDependencies(context.Background(), src)
	require.NoError(t, err)
	assert.Empty(t, fetched)
	assert.Empty(t, f.fetcher.Calls())
}

func TestInstallSubDependencies_StrictFetchFailure(t *testing.T) {
	f := newFixture(t, testutil.EnvMemoryOnly)
	link := "https://github.com/tpope/vim-fugitive.git"
	src := f.env.WithSource("alice_dots", testutil.FileTree{
		".vim": testutil.FileTree{"bundle": testutil.FileTree{"packages": link + "\n"}},
	})
	f.fetcher.WithFailure(link, nil)

	_, err := f.installer(true).InstallSubDependencies(context.Background(), src)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFetch))

	fetched, err := f.installer(false).InstallSubDependencies(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, fetched, 1)
}

func TestUninstall_SymlinkLeavesTarget(t *testing.T) {
	f := newFixture(t, testutil.EnvIsolated)
	target := f.env.WithSource("alice_dots", testutil.FileTree{".vim": testutil.FileTree{"keep.vim": "k"}})
	link := filepath.Join(f.env.HomeDir, ".vim")
	require.NoError(t, f.env.FS.Symlink(filepath.Join(target, ".vim"), link))

	require.NoError(t, f.installer(false).Uninstall(link))

	_, err := f.env.FS.Lstat(link)
	assert.Error(t, err)
	testutil.AssertFileContent(t, f.env.FS, filepath.Join(target, ".vim", "keep.vim"), "k")
}

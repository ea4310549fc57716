// SPDX-License-Identifier: MPL-2.0

package xdgdirs

import (
	"path/filepath"
	"slices"
	"testing"

	"deskscout-cli/internal/testutil"
)

func TestDataHome_FromEnv(t *testing.T) {
	restore := testutil.MustSetenv(t, "XDG_DATA_HOME", "/custom/share")
	defer restore()

	if got := DataHome(); got != "/custom/share" {
		t.Errorf("DataHome() = %q, want /custom/share", got)
	}
}

func TestDataHome_DefaultsToLocalShare(t *testing.T) {
	restoreData := testutil.MustUnsetenv(t, "XDG_DATA_HOME")
	defer restoreData()
	restoreHome := testutil.MustSetenv(t, "HOME", "/home/someone")
	defer restoreHome()

	if got, want := DataHome(), filepath.Join("/home/someone", ".local", "share"); got != want {
		t.Errorf("DataHome() = %q, want %q", got, want)
	}
}

func TestDataDirs_FromEnv(t *testing.T) {
	restore := testutil.MustSetenv(t, "XDG_DATA_DIRS", "/opt/share::/extra/share:")
	defer restore()

	got := DataDirs()
	want := []string{"/opt/share", "/extra/share"}
	if !slices.Equal(got, want) {
		t.Errorf("DataDirs() = %v, want %v (empty entries dropped)", got, want)
	}
}

func TestDataDirs_Defaults(t *testing.T) {
	restore := testutil.MustUnsetenv(t, "XDG_DATA_DIRS")
	defer restore()

	got := DataDirs()
	want := []string{"/usr/local/share", "/usr/share"}
	if !slices.Equal(got, want) {
		t.Errorf("DataDirs() = %v, want %v", got, want)
	}
}

func TestApplicationDirs_Defaults(t *testing.T) {
	restoreHome := testutil.MustSetenv(t, "XDG_DATA_HOME", "/home/u/.local/share")
	defer restoreHome()
	restoreDirs := testutil.MustSetenv(t, "XDG_DATA_DIRS", "/usr/local/share:/usr/share")
	defer restoreDirs()

	got := ApplicationDirs(Options{})

	for _, want := range []string{
		"/home/u/.local/share/applications",
		"/home/u/.local/share/flatpak/exports/share/applications",
		"/usr/local/share/applications",
		"/usr/share/applications",
		flatpakSystemExports,
		snapDesktopExports,
	} {
		if !slices.Contains(got, want) {
			t.Errorf("ApplicationDirs() = %v, missing %q", got, want)
		}
	}
	if !slices.IsSorted(got) {
		t.Error("ApplicationDirs() must be sorted")
	}
}

func TestApplicationDirs_NoCommonExtras(t *testing.T) {
	restoreHome := testutil.MustSetenv(t, "XDG_DATA_HOME", "/home/u/.local/share")
	defer restoreHome()

	got := ApplicationDirs(Options{NoCommonExtras: true})

	for _, unwanted := range []string{
		flatpakSystemExports,
		snapDesktopExports,
		"/home/u/.local/share/flatpak/exports/share/applications",
	} {
		if slices.Contains(got, unwanted) {
			t.Errorf("ApplicationDirs(NoCommonExtras) = %v, should not contain %q", got, unwanted)
		}
	}
}

func TestApplicationDirs_NoDefault(t *testing.T) {
	got := ApplicationDirs(Options{NoDefault: true, ExtraDirs: []string{"/my/apps"}})

	if !slices.Equal(got, []string{"/my/apps"}) {
		t.Errorf("ApplicationDirs(NoDefault) = %v, want only the extra dir", got)
	}
}

func TestApplicationDirs_ExtraDirsDeduplicated(t *testing.T) {
	restoreHome := testutil.MustSetenv(t, "XDG_DATA_HOME", "/home/u/.local/share")
	defer restoreHome()

	got := ApplicationDirs(Options{
		ExtraDirs: []string{"/my/apps", "/my/apps", "/usr/share/applications"},
	})

	seen := map[string]int{}
	for _, dir := range got {
		seen[dir]++
	}
	for dir, n := range seen {
		if n > 1 {
			t.Errorf("directory %q appears %d times, want deduplication", dir, n)
		}
	}
}

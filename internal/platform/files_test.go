package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := HomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != DownloadsDirName {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestDefaultSaveDirectory_UsesDownloadsWhenPresent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	downloads := filepath.Join(home, DownloadsDirName)
	if err := os.Mkdir(downloads, DefaultDirPermissions); err != nil {
		t.Fatalf("Failed to create downloads dir: %v", err)
	}

	if got := DefaultSaveDirectory(); got != downloads {
		t.Errorf("Expected %s, got %s", downloads, got)
	}
}

func TestDefaultSaveDirectory_FallsBackToWorkingDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	if got := DefaultSaveDirectory(); got != cwd {
		t.Errorf("Expected working directory %s, got %s", cwd, got)
	}
}

func TestNewestFileSince(t *testing.T) {
	dir := t.TempDir()
	since := time.Now().Add(-time.Minute)

	write := func(name string, mod time.Time) {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatalf("Failed to set times on %s: %v", name, err)
		}
	}

	write("old.mp4", since.Add(-time.Hour))
	write("video.mp4", since.Add(10*time.Second))
	write("video.mp4.part", since.Add(30*time.Second))
	write("audio.mp3", since.Add(20*time.Second))

	got, err := NewestFileSince(dir, since)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if filepath.Base(got) != "audio.mp3" {
		t.Errorf("Expected audio.mp3, got %s", got)
	}
}

func TestNewestFileSince_NoFile(t *testing.T) {
	dir := t.TempDir()

	_, err := NewestFileSince(dir, time.Now())
	if !errors.Is(err, ErrNoOutputFile) {
		t.Errorf("Expected ErrNoOutputFile, got %v", err)
	}

	_, err = NewestFileSince(filepath.Join(dir, "missing"), time.Now())
	if err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.txt")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_RejectsURL(t *testing.T) {
	err := OpenFileWithDefaultApp("https://example.com/video.mp4")
	if err == nil || !strings.Contains(err.Error(), "URL") {
		t.Errorf("Expected URL error, got %v", err)
	}

	if err := OpenFileWithDefaultApp(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestFreeSpace(t *testing.T) {
	free, err := FreeSpace(t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if free <= 0 {
		t.Errorf("Expected positive free space, got %d", free)
	}
}

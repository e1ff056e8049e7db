package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

const mediaBucket = "media"

// NewObjectName returns a collision-free object name preserving the original
// extension: <random-hex-token>.<ext>.
func NewObjectName(filename string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return token + strings.ToLower(filepath.Ext(filename))
}

// UploadCarImage stores a car image under cars/<random-hex-token>.<ext> and
// returns the object path plus its public URL.
func UploadCarImage(fileHeader *multipart.FileHeader) (string, string, error) {
	return uploadObject(fileHeader, "cars")
}

// UploadGenericFile stores a generic upload under files/<random-hex-token>.<ext>.
func UploadGenericFile(fileHeader *multipart.FileHeader) (string, string, error) {
	return uploadObject(fileHeader, "files")
}

func uploadObject(fileHeader *multipart.FileHeader, prefix string) (string, string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	file, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	objectPath := fmt.Sprintf("%s/%s", prefix, NewObjectName(fileHeader.Filename))

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{ContentType: &contentType}

	if _, err := storageClient.UploadFile(mediaBucket, objectPath, &buf, options); err != nil {
		return "", "", err
	}

	return objectPath, PublicURL(objectPath), nil
}

// PublicURL builds the public URL of a stored object.
func PublicURL(objectPath string) string {
	if objectPath == "" {
		return ""
	}
	supabaseURL := strings.TrimRight(os.Getenv("SUPABASE_URL"), "/")
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", supabaseURL, mediaBucket, objectPath)
}

// DeleteObject removes a stored object. Callers treat failures as
// best-effort: a dangling object is preferable to a failed delete request.
func DeleteObject(objectPath string) error {
	if objectPath == "" {
		return nil
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_URL or SUPABASE_KEY not configured")
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", strings.TrimRight(supabaseURL, "/"), mediaBucket, objectPath)

	req, err := http.NewRequest(http.MethodDelete, deleteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("apikey", supabaseKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("delete failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}

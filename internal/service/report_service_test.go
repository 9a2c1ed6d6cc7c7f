package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/natureshield/natureshield-backend/internal/testutil"
)

func TestReportCreate_NewImage(t *testing.T) {
	reportRepo := testutil.NewMockReportRepository()
	blobs := testutil.NewMockBlobStore("https://cdn.example.com/plants")
	s := NewReportService(reportRepo, blobs)

	imagePath := writeTempImage(t, "sighting.jpg")
	report, err := s.Create(context.Background(), CreateReportInput{
		UserID:    uuid.New(),
		Name:      "Kudzu on trail 7",
		Date:      "2024-06-15",
		ImagePath: imagePath,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.Image == nil {
		t.Fatal("Expected image URL to be set")
	}
	want := "https://cdn.example.com/plants/upload/w_600,h_300,c_fill,q_auto,f_auto/reports/sighting.jpg"
	if *report.Image != want {
		t.Errorf("Expected transformed URL %q, got %q", want, *report.Image)
	}
	if len(blobs.Folders) != 1 || blobs.Folders[0] != "reports" {
		t.Errorf("Expected one upload into 'reports', got %v", blobs.Folders)
	}
}

func TestReportCreate_AppendsNotUpserts(t *testing.T) {
	reportRepo := testutil.NewMockReportRepository()
	s := NewReportService(reportRepo, testutil.NewMockBlobStore("https://cdn.example.com"))

	userID := uuid.New()
	first, err := s.Create(context.Background(), CreateReportInput{UserID: userID, Name: "first", Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("First create failed: %v", err)
	}
	second, err := s.Create(context.Background(), CreateReportInput{UserID: userID, Name: "second", Date: "2024-01-02"})
	if err != nil {
		t.Fatalf("Second create failed: %v", err)
	}

	if first.ID == second.ID {
		t.Error("Expected two distinct report documents")
	}
	if reportRepo.CountFor(userID) != 2 {
		t.Errorf("Expected 2 reports, got %d", reportRepo.CountFor(userID))
	}
}

func TestReportListOrdered_StringDescending(t *testing.T) {
	reportRepo := testutil.NewMockReportRepository()
	s := NewReportService(reportRepo, testutil.NewMockBlobStore("https://cdn.example.com"))

	userID := uuid.New()
	for _, date := range []string{"2024-01-01", "2023-12-31", "2024-06-15"} {
		if _, err := s.Create(context.Background(), CreateReportInput{UserID: userID, Date: date}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	reports, err := s.ListOrdered(context.Background(), userID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"2024-06-15", "2024-01-01", "2023-12-31"}
	if len(reports) != len(want) {
		t.Fatalf("Expected %d reports, got %d", len(want), len(reports))
	}
	for i, date := range want {
		if reports[i].Date != date {
			t.Errorf("Position %d: expected date %s, got %s", i, date, reports[i].Date)
		}
	}
}

func TestReportListOrdered_PlaceholderMaterialization(t *testing.T) {
	reportRepo := testutil.NewMockReportRepository()
	s := NewReportService(reportRepo, testutil.NewMockBlobStore("https://cdn.example.com"))

	userID := uuid.New()
	reports, err := s.ListOrdered(context.Background(), userID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(reports) != 1 {
		t.Fatalf("Expected one placeholder report, got %d", len(reports))
	}
	placeholder := reports[0]
	if placeholder.Name != "" || placeholder.Date != "" || placeholder.Image != nil {
		t.Error("Expected blank placeholder report")
	}

	// The placeholder is persisted, so a second read still returns it.
	again, err := s.ListOrdered(context.Background(), userID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(again) != 1 || again[0].ID != placeholder.ID {
		t.Error("Expected the persisted placeholder on repeat reads")
	}
}

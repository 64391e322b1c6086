package library

import (
	"fmt"
	"strings"
)

// SeedVariant selects the AppData used on first run.
type SeedVariant string

const (
	SeedDemo  SeedVariant = "demo"
	SeedEmpty SeedVariant = "empty"
)

func ParseSeedVariant(s string) (SeedVariant, error) {
	switch SeedVariant(strings.ToLower(strings.TrimSpace(s))) {
	case SeedDemo, "":
		return SeedDemo, nil
	case SeedEmpty:
		return SeedEmpty, nil
	default:
		return "", fmt.Errorf("unknown seed variant %q (want %q or %q)", s, SeedDemo, SeedEmpty)
	}
}

func InitialData(variant SeedVariant) AppData {
	if variant == SeedEmpty {
		return EmptyData()
	}
	return GetInitialData()
}

func EmptyData() AppData {
	return AppData{
		Books:    []Book{},
		Comments: []Comment{},
		Stats:    []ReadingStats{},
	}
}

// GetInitialData returns the curated demo library. A fresh value is built on
// every call so callers may mutate it freely.
func GetInitialData() AppData {
	return AppData{
		Books: []Book{
			{
				ID:            "1",
				GoogleBookID:  "fict_1",
				Title:         "L'Étranger",
				Authors:       []string{"Albert Camus"},
				Description:   "Un roman emblématique de la littérature française explorant l'absurdité de l'existence.",
				Thumbnail:     "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
				Categories:    []string{"Classique", "Philosophie", "Fiction"},
				PageCount:     intPtr(159),
				PublishedDate: "1942",
				Status:        StatusRead,
				Rating:        intPtr(5),
				CreatedAt:     "2024-01-15T00:00:00.000Z",
				UpdatedAt:     "2024-01-15T00:00:00.000Z",
			},
			{
				ID:            "2",
				GoogleBookID:  "fict_2",
				Title:         "1984",
				Authors:       []string{"George Orwell"},
				Description:   "Un roman dystopique qui décrit un monde totalitaire où la liberté n'existe plus.",
				Thumbnail:     "https://images.unsplash.com/photo-1495640388908-05fa85288e61?w=400",
				Categories:    []string{"Science-fiction", "Dystopie", "Classique"},
				PageCount:     intPtr(328),
				PublishedDate: "1949",
				Status:        StatusReading,
				Rating:        intPtr(4),
				CreatedAt:     "2024-02-01T00:00:00.000Z",
				UpdatedAt:     "2024-02-01T00:00:00.000Z",
			},
			{
				ID:            "3",
				GoogleBookID:  "fict_3",
				Title:         "Le Petit Prince",
				Authors:       []string{"Antoine de Saint-Exupéry"},
				Description:   "Un conte poétique et philosophique pour enfants et adultes.",
				Thumbnail:     "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400",
				Categories:    []string{"Classique", "Conte", "Philosophie"},
				PageCount:     intPtr(96),
				PublishedDate: "1943",
				Status:        StatusToRead,
				CreatedAt:     "2024-02-10T00:00:00.000Z",
				UpdatedAt:     "2024-02-10T00:00:00.000Z",
			},
			{
				ID:            "4",
				GoogleBookID:  "fict_4",
				Title:         "Les Misérables",
				Authors:       []string{"Victor Hugo"},
				Description:   "Une fresque sociale de la France du XIXe siècle centrée sur le personnage de Jean Valjean.",
				Thumbnail:     "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=400",
				Categories:    []string{"Classique", "Drame", "Histoire"},
				PageCount:     intPtr(1488),
				PublishedDate: "1862",
				Status:        StatusToRead,
				CreatedAt:     "2024-02-12T00:00:00.000Z",
				UpdatedAt:     "2024-02-12T00:00:00.000Z",
			},
			{
				ID:            "5",
				GoogleBookID:  "fict_5",
				Title:         "Sapiens: Une brève histoire de l'humanité",
				Authors:       []string{"Yuval Noah Harari"},
				Description:   "Une exploration fascinante de l'histoire de l'humanité depuis l'âge de pierre.",
				Thumbnail:     "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400",
				Categories:    []string{"Histoire", "Science", "Essai"},
				PageCount:     intPtr(512),
				PublishedDate: "2011",
				Status:        StatusRead,
				Rating:        intPtr(5),
				CreatedAt:     "2024-01-20T00:00:00.000Z",
				UpdatedAt:     "2024-01-20T00:00:00.000Z",
			},
			{
				ID:            "6",
				GoogleBookID:  "fict_6",
				Title:         "Le Rouge et le Noir",
				Authors:       []string{"Stendhal"},
				Description:   "L'ascension et la chute de Julien Sorel dans la société française de la Restauration.",
				Thumbnail:     "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=400",
				Categories:    []string{"Classique", "Romance", "Drame"},
				PageCount:     intPtr(576),
				PublishedDate: "1830",
				Status:        StatusReading,
				Rating:        intPtr(4),
				CreatedAt:     "2024-02-05T00:00:00.000Z",
				UpdatedAt:     "2024-02-05T00:00:00.000Z",
			},
		},
		Comments: []Comment{
			{
				ID:        "c1",
				BookID:    "1",
				Content:   "Un chef-d'œuvre absolu ! La prose de Camus est à la fois simple et profonde. Le personnage de Meursault m'a beaucoup marqué.",
				CreatedAt: "2024-01-16T00:00:00.000Z",
				UpdatedAt: "2024-01-16T00:00:00.000Z",
			},
			{
				ID:        "c2",
				BookID:    "5",
				Content:   "Livre fascinant qui remet en question beaucoup de nos certitudes. La section sur la révolution cognitive est particulièrement intéressante.",
				CreatedAt: "2024-01-25T00:00:00.000Z",
				UpdatedAt: "2024-01-25T00:00:00.000Z",
			},
		},
		Stats: []ReadingStats{
			{Category: "Classique", BooksRead: 3},
			{Category: "Philosophie", BooksRead: 2},
			{Category: "Science-fiction", BooksRead: 1},
			{Category: "Histoire", BooksRead: 1},
			{Category: "Essai", BooksRead: 1},
		},
	}
}

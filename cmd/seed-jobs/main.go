// Command-line tool to load sample jobs into the database.
// It stands in for the external scraper during local development.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sudharson99/swipeHire/internal/database"
	"github.com/sudharson99/swipeHire/internal/model"
)

func main() {
	perCity := flag.Int("per-city", 10, "number of sample jobs per city")
	flag.Parse()

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}

	titles := []string{
		"Line Cook", "Warehouse Associate", "Barista", "Delivery Driver",
		"Front Desk Agent", "Junior Web Developer", "Retail Sales Associate",
		"Office Administrator", "Landscaper", "Security Guard",
	}
	provinces := map[string]string{
		"vancouver": "BC",
		"toronto":   "ON",
		"calgary":   "AB",
	}

	added := 0
	posted := time.Now().AddDate(0, 0, -1)
	for _, city := range model.Cities {
		started := time.Now()
		for i := 0; i < *perCity; i++ {
			title := titles[i%len(titles)]
			job := model.Job{
				Title:           title,
				Company:         fmt.Sprintf("%s Sample Co %d", city, i+1),
				Location:        city,
				City:            city,
				Province:        provinces[city],
				Description:     fmt.Sprintf("Sample %s posting in %s for local development.", title, city),
				JobURL:          fmt.Sprintf("https://example.com/%s/job/%d", city, i+1),
				SourcePortal:    "seed",
				PostedDate:      &posted,
				JobType:         "full-time",
				ExperienceLevel: "entry",
				Tags:            pq.StringArray{"sample"},
				IsActive:        true,
			}
			// Re-running the seeder must not duplicate rows; job_url is unique.
			if err := db.Where("job_url = ?", job.JobURL).FirstOrCreate(&job).Error; err != nil {
				log.Fatalf("failed to seed job: %v", err)
			}
			added++
		}

		completed := time.Now()
		scrapeLog := model.ScrapeLog{
			ID:                uuid.New(),
			PortalName:        "seed",
			City:              city,
			ScrapeStartedAt:   &started,
			ScrapeCompletedAt: &completed,
			JobsFound:         *perCity,
			JobsAdded:         *perCity,
			Status:            "completed",
		}
		if err := db.Create(&scrapeLog).Error; err != nil {
			log.Fatalf("failed to record seed run: %v", err)
		}
	}

	fmt.Printf("Seeded %d jobs across %d cities.\n", added, len(model.Cities))
}

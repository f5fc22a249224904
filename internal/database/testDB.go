package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/sudharson99/swipeHire/internal/model"
	"github.com/sudharson99/swipeHire/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users & jobs
var (
	TestUser1 m.User
	TestUser2 m.User

	// Plain password shared by all seeded users
	TestSeedPassword = "SeedPass123!"

	// Seeded jobs per city. Toronto has five active jobs on purpose:
	// pagination tests rely on it.
	TestTorontoJobs   []m.Job
	TestVancouverJobs []m.Job
	TestCalgaryJob    m.Job
	TestInactiveJob   m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample users, jobs and scrape logs if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return loadTestData(db)
	}

	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	toronto := "toronto"
	vancouver := "vancouver"

	users := []m.User{
		{
			ID:            uuid.New(),
			Email:         "alice@example.com",
			Password:      hashedPwd,
			FirstName:     "Alice",
			LastName:      "Nguyen",
			Phone:         ptr("4160000001"),
			PreferredCity: &toronto,
		},
		{
			ID:            uuid.New(),
			Email:         "bob@example.com",
			Password:      hashedPwd,
			FirstName:     "Bob",
			LastName:      "Tremblay",
			Phone:         ptr("6040000002"),
			PreferredCity: &vancouver,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	TestUser1 = users[0]
	TestUser2 = users[1]

	posted := time.Now().AddDate(0, 0, -2)

	torontoJobs := []m.Job{
		{
			Title: "Line Cook", Company: "Maple Diner", Location: "Queen St W, Toronto",
			City: "toronto", Province: "ON",
			Description: "Prep and cook on a busy line.", JobURL: "https://toronto.craigslist.org/job/1001",
			SourcePortal: "craigslist", ContactEmail: "jobs@maplediner.ca", PostedDate: &posted,
			JobType: "full-time", ExperienceLevel: "entry", Salary: "$18/hr",
			Tags: pq.StringArray{"kitchen", "food"}, IsActive: true,
		},
		{
			Title: "Warehouse Associate", Company: "Northbound Logistics", Location: "Etobicoke",
			City: "toronto", Province: "ON",
			Description: "Pick, pack and ship orders.", JobURL: "https://toronto.craigslist.org/job/1002",
			SourcePortal: "craigslist", PostedDate: &posted,
			JobType: "full-time", ExperienceLevel: "entry", Salary: "$19/hr", IsActive: true,
		},
		{
			Title: "Barista", Company: "Bloor Coffee Co", Location: "Bloor St",
			City: "toronto", Province: "ON",
			Description: "Espresso experience preferred.", JobURL: "https://toronto.craigslist.org/job/1003",
			SourcePortal: "craigslist", PostedDate: &posted,
			JobType: "part-time", ExperienceLevel: "entry", IsActive: true,
		},
		{
			Title: "Junior Web Developer", Company: "Lakeview Digital", Location: "Downtown Toronto",
			City: "toronto", Province: "ON",
			Description: "HTML, CSS and a bit of JavaScript.", JobURL: "https://ca.indeed.com/job/1004",
			SourcePortal: "indeed", PostedDate: &posted,
			JobType: "full-time", ExperienceLevel: "junior", Salary: "$55k",
			Tags: pq.StringArray{"javascript", "web"}, IsActive: true,
		},
		{
			Title: "Delivery Driver", Company: "Speedy Couriers", Location: "North York",
			City: "toronto", Province: "ON",
			Description: "Valid G license required.", JobURL: "https://ca.indeed.com/job/1005",
			SourcePortal: "indeed", PostedDate: &posted,
			JobType: "contract", ExperienceLevel: "entry", IsActive: true,
		},
	}
	if err := db.Create(&torontoJobs).Error; err != nil {
		return err
	}
	TestTorontoJobs = torontoJobs

	vancouverJobs := []m.Job{
		{
			Title: "Sous Chef", Company: "Granville Bistro", Location: "Granville Island",
			City: "vancouver", Province: "BC",
			Description: "Second in command of the kitchen.", JobURL: "https://vancouver.craigslist.org/job/2001",
			SourcePortal: "craigslist", PostedDate: &posted,
			JobType: "full-time", ExperienceLevel: "mid", IsActive: true,
		},
		{
			Title: "Front Desk Agent", Company: "Harbourview Hotel", Location: "Coal Harbour",
			City: "vancouver", Province: "BC",
			Description: "Evening and weekend shifts.", JobURL: "https://vancouver.craigslist.org/job/2002",
			SourcePortal: "craigslist", PostedDate: &posted,
			JobType: "full-time", ExperienceLevel: "entry", IsActive: true,
		},
		{
			Title: "Bike Mechanic", Company: "Stanley Cycles", Location: "West End",
			City: "vancouver", Province: "BC",
			Description: "Tune-ups and repairs.", JobURL: "https://vancouver.craigslist.org/job/2003",
			SourcePortal: "craigslist", PostedDate: &posted,
			JobType: "part-time", ExperienceLevel: "entry", IsActive: true,
		},
	}
	if err := db.Create(&vancouverJobs).Error; err != nil {
		return err
	}
	TestVancouverJobs = vancouverJobs

	calgaryJob := m.Job{
		Title: "Rig Technician", Company: "Foothills Energy", Location: "Calgary SE",
		City: "calgary", Province: "AB",
		Description: "Field work, rotating schedule.", JobURL: "https://calgary.craigslist.org/job/3001",
		SourcePortal: "craigslist", PostedDate: &posted,
		JobType: "full-time", ExperienceLevel: "mid", IsActive: true,
	}
	if err := db.Create(&calgaryJob).Error; err != nil {
		return err
	}
	TestCalgaryJob = calgaryJob

	inactiveJob := m.Job{
		Title: "Seasonal Mover", Company: "Two Guys Moving", Location: "Scarborough",
		City: "toronto", Province: "ON",
		Description: "Posting expired.", JobURL: "https://toronto.craigslist.org/job/1099",
		SourcePortal: "craigslist", PostedDate: &posted,
		JobType: "contract", ExperienceLevel: "entry", IsActive: false,
	}
	if err := db.Create(&inactiveJob).Error; err != nil {
		return err
	}
	TestInactiveJob = inactiveJob

	started := time.Now().Add(-2 * time.Hour)
	completed := started.Add(10 * time.Minute)
	logs := []m.ScrapeLog{
		{
			ID: uuid.New(), PortalName: "craigslist", City: "toronto",
			ScrapeStartedAt: &started, ScrapeCompletedAt: &completed,
			JobsFound: 40, JobsAdded: 5, Status: "completed",
		},
		{
			ID: uuid.New(), PortalName: "craigslist", City: "vancouver",
			ScrapeStartedAt: &started, ScrapeCompletedAt: &completed,
			JobsFound: 25, JobsAdded: 3, Status: "completed",
		},
	}
	if err := db.Create(&logs).Error; err != nil {
		return err
	}

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	if err := db.First(&TestUser1, "email = ?", "alice@example.com").Error; err != nil {
		return err
	}
	if err := db.First(&TestUser2, "email = ?", "bob@example.com").Error; err != nil {
		return err
	}

	if err := db.Where("city = ? AND is_active", "toronto").Order("id ASC").Find(&TestTorontoJobs).Error; err != nil {
		return err
	}
	if err := db.Where("city = ? AND is_active", "vancouver").Order("id ASC").Find(&TestVancouverJobs).Error; err != nil {
		return err
	}
	if err := db.First(&TestCalgaryJob, "city = ?", "calgary").Error; err != nil {
		return err
	}
	if err := db.First(&TestInactiveJob, "is_active = false").Error; err != nil {
		return err
	}

	return nil
}

// ptr helper
func ptr[T any](v T) *T { return &v }

// Package seed populates a database with sample users, warbles, and follow
// edges for local development.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"warbler/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultPassword is the password every seeded user receives.
const DefaultPassword = "password123"

var (
	usernames = []string{
		"tuckerdiane", "wendy07", "huntersarah", "nicole84", "erin62",
		"omccoy", "kricher", "catherine10", "nmiller", "laurachase",
		"ysimpson", "greg_b", "marina_l", "joshk", "prattiris",
	}

	bios = []string{
		"Just here for the warbles.",
		"Birdwatcher, coffee addict, occasional poster.",
		"Shouting into the void, 140 characters at a time.",
		"Ask me about my sourdough starter.",
		"Professional over-thinker.",
		"I warble therefore I am.",
		"Based somewhere warm.",
		"Mostly retweets, occasionally thoughts.",
		"Collector of small facts.",
		"Trying to keep it under 140.",
	}

	locations = []string{
		"Portland, OR", "Austin, TX", "Brooklyn, NY", "Chicago, IL",
		"Seattle, WA", "Denver, CO", "Oakland, CA", "Raleigh, NC",
	}

	warbleTexts = []string{
		"Nothing beats a quiet morning and a hot cup of coffee.",
		"Hot take: pigeons are just city doves with worse PR.",
		"Finally finished that book I started in March.",
		"Does anyone actually like daylight saving time?",
		"Today's small win: inbox zero. It won't last.",
		"The best ideas always show up in the shower.",
		"Rainy days are for soup and long playlists.",
		"Saw three herons on my walk today. Three!",
		"Note to self: water the plants before they stage a protest.",
		"Weekend plans: absolutely nothing, and I've earned it.",
		"New neighborhood bakery just changed my whole week.",
		"If you need me I'll be rewatching the same show again.",
		"Learned a new word today and I will be overusing it.",
		"The trick to running is to simply not stop. Working on it.",
		"Every houseplant I own is a tiny green responsibility.",
		"Autumn is undefeated and I will not be taking questions.",
		"Made pasta from scratch. Kitchen: destroyed. Worth it.",
		"A crow followed me home and honestly? Flattered.",
		"Sunsets have been really showing off lately.",
		"Reminder: drink some water, you absolute mammal.",
	}
)

// Seeder populates the database with sample records.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, rng: rand.New(rand.NewSource(rand.Int63()))}
}

// ClearAll removes every seeded table's contents. Order matters: edges and
// messages go before users.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	tables := []string{"likes", "follows", "blocked_users", "direct_messages", "messages", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// SeedUsers creates n users with the default password and returns them.
func (s *Seeder) SeedUsers(n int) ([]models.User, error) {
	log.Printf("Creating %d users...", n)

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing seed password: %w", err)
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		name := usernames[i%len(usernames)]
		if i >= len(usernames) {
			name = fmt.Sprintf("%s%d", name, i/len(usernames))
		}
		user := models.User{
			Username:       name,
			Email:          fmt.Sprintf("%s@example.com", name),
			Password:       string(hash),
			ImageURL:       models.DefaultImageURL,
			HeaderImageURL: models.DefaultHeaderImageURL,
			Bio:            bios[s.rng.Intn(len(bios))],
			Location:       locations[s.rng.Intn(len(locations))],
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("creating user %s: %w", name, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// SeedMessages posts count warbles distributed randomly over the users.
func (s *Seeder) SeedMessages(users []models.User, count int) error {
	log.Printf("Creating %d warbles...", count)

	for i := 0; i < count; i++ {
		msg := models.Message{
			Text:   warbleTexts[s.rng.Intn(len(warbleTexts))],
			UserID: users[s.rng.Intn(len(users))].ID,
		}
		if err := s.db.Create(&msg).Error; err != nil {
			return fmt.Errorf("creating warble: %w", err)
		}
	}
	return nil
}

// SeedFollows gives each user a handful of random follows. Self-follows are
// skipped and duplicates are absorbed by the unique pair index.
func (s *Seeder) SeedFollows(users []models.User) error {
	log.Println("Creating follow edges...")

	for _, u := range users {
		n := 2 + s.rng.Intn(4)
		for i := 0; i < n; i++ {
			target := users[s.rng.Intn(len(users))]
			if target.ID == u.ID {
				continue
			}
			follow := models.Follow{FollowerID: u.ID, FollowedID: target.ID}
			if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error; err != nil {
				return fmt.Errorf("creating follow: %w", err)
			}
		}
	}
	return nil
}

// Run clears the database when asked and seeds users, warbles, and follows.
func (s *Seeder) Run(numUsers, numMessages int, clean bool) error {
	if clean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.SeedUsers(numUsers)
	if err != nil {
		return err
	}
	if err := s.SeedMessages(users, numMessages); err != nil {
		return err
	}
	return s.SeedFollows(users)
}

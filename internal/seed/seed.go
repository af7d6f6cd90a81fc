package seed

import (
	"fmt"
	"log/slog"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool

	// MaxDays spreads post timestamps over the past N days. Zero means 90.
	MaxDays int
	// SkipBcrypt stores plaintext passwords. Only useful to speed up large
	// local seeds; never enable outside development.
	SkipBcrypt bool
	// RandSeed makes the generated data reproducible. Zero seeds from
	// entropy.
	RandSeed int64
}

// builtinGroups exist in every environment; EnsureGroups creates the missing
// ones at startup and during seeding.
var builtinGroups = []models.Group{
	{Title: "Technology", Slug: "technology", Description: "Gadgets, software and everything in between."},
	{Title: "Books", Slug: "books", Description: "What are you reading?"},
	{Title: "Travel", Slug: "travel", Description: "Trip reports and destination tips."},
	{Title: "Food", Slug: "food", Description: "Recipes, restaurants and kitchen experiments."},
	{Title: "Music", Slug: "music", Description: "New releases and old favorites."},
	{Title: "Science", Slug: "science", Description: "Discoveries and discussions."},
	{Title: "Art", Slug: "art", Description: "Paintings, photography and design."},
	{Title: "History", Slug: "history", Description: "Stories from the past."},
	{Title: "Sports", Slug: "sports", Description: "Scores, matches and training."},
	{Title: "Programming", Slug: "programming", Description: "Code, tools and war stories."},
}

var chatRooms = []string{"general", "random", "help"}

// EnsureGroups creates any built-in group that does not exist yet. Existing
// groups are left untouched, so it is safe to run on every startup.
func EnsureGroups(db *gorm.DB) error {
	for _, g := range builtinGroups {
		group := g
		if err := db.Where("slug = ?", group.Slug).FirstOrCreate(&group).Error; err != nil {
			return err
		}
	}
	return nil
}

// Seed populates the database with demo users, groups, posts, comments,
// follows and chat messages.
func Seed(db *gorm.DB, opts Options) error {
	slog.Info("seeding database", "users", opts.NumUsers, "posts", opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			slog.Warn("could not clear existing data, continuing", "error", err)
		}
	}

	factory := NewFactory(db, opts)

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	slog.Info("users created", "count", len(users))

	groups, err := createGroups(db)
	if err != nil {
		return fmt.Errorf("failed to create groups: %w", err)
	}
	slog.Info("groups created", "count", len(groups))

	posts, err := createPosts(factory, users, groups, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	slog.Info("posts created", "count", len(posts))

	if err := createComments(factory, users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}

	if err := createFollows(factory, users); err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}

	if err := createMessages(factory, users); err != nil {
		return fmt.Errorf("failed to create messages: %w", err)
	}

	slog.Info("database seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	sql := `TRUNCATE TABLE comments, follows, posts, messages, groups, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// A couple of well-known accounts for local development.
	if count >= 2 {
		admin, err := factory.CreateUser(func(u *models.User) {
			u.Username = "admin"
			u.Email = "admin@example.com"
			u.IsAdmin = true
		})
		if err != nil {
			return nil, err
		}
		users = append(users, admin)

		test, err := factory.CreateUser(func(u *models.User) {
			u.Username = "test"
			u.Email = "test@example.com"
		})
		if err != nil {
			return nil, err
		}
		users = append(users, test)
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			slog.Warn("failed to create user, skipping", "error", err)
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func createGroups(db *gorm.DB) ([]*models.Group, error) {
	if err := EnsureGroups(db); err != nil {
		return nil, err
	}
	var groups []*models.Group
	if err := db.Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func createPosts(factory *Factory, users []*models.User, groups []*models.Group, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[factory.faker.Number(0, len(users)-1)]

		// Roughly a third of posts belong to no group.
		var group *models.Group
		if len(groups) > 0 && factory.faker.Float32Range(0, 1) < 0.66 {
			group = groups[factory.faker.Number(0, len(groups)-1)]
		}

		posts = append(posts, factory.BuildPost(author, group))
	}

	if err := factory.CreatePostsBatch(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func createComments(factory *Factory, users []*models.User, posts []*models.Post) error {
	if len(users) == 0 {
		return nil
	}
	for _, post := range posts {
		n := factory.faker.Number(0, 3)
		for i := 0; i < n; i++ {
			author := users[factory.faker.Number(0, len(users)-1)]
			if _, err := factory.CreateComment(author, post); err != nil {
				return err
			}
		}
	}
	return nil
}

func createFollows(factory *Factory, users []*models.User) error {
	for _, user := range users {
		n := factory.faker.Number(0, 5)
		for i := 0; i < n; i++ {
			author := users[factory.faker.Number(0, len(users)-1)]
			if author.ID == user.ID {
				continue
			}
			// The unique pair index rejects duplicates; ignore those.
			_ = factory.CreateFollow(user, author)
		}
	}
	return nil
}

func createMessages(factory *Factory, users []*models.User) error {
	if len(users) == 0 {
		return nil
	}
	for _, room := range chatRooms {
		n := factory.faker.Number(5, 15)
		for i := 0; i < n; i++ {
			sender := users[factory.faker.Number(0, len(users)-1)]
			if _, err := factory.CreateMessage(room, sender); err != nil {
				return err
			}
		}
	}
	return nil
}

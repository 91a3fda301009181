// Package seed loads a demo restaurant into an empty repository.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/judyrop/restaurant-pos/models"
	"github.com/judyrop/restaurant-pos/storage"
)

func ptr[T any](v T) *T { return &v }

var locations = []models.NewLocation{
	{Name: "Downtown", Address: "123 Main Street, Downtown", Phone: ptr("+1 234-567-8900")},
	{Name: "West Side", Address: "456 West Avenue", Phone: ptr("+1 234-567-8901")},
	{Name: "North End", Address: "789 North Boulevard", Phone: ptr("+1 234-567-8902")},
}

var categories = []string{"Appetizers", "Main Courses", "Desserts", "Drinks"}

type dish struct {
	category    string
	name        string
	description string
	price       string
	image       string
}

var dishes = []dish{
	{"Main Courses", "Grilled Salmon", "Fresh Atlantic salmon with lemon butter sauce and seasonal vegetables", "24.99", "/assets/generated_images/Signature_salmon_dish_d8e8f815.png"},
	{"Main Courses", "Margherita Pizza", "Wood-fired pizza with fresh mozzarella, basil, and San Marzano tomatoes", "16.99", "/assets/generated_images/Margherita_pizza_menu_item_9d9fa87c.png"},
	{"Main Courses", "Classic Burger", "Angus beef with cheddar, lettuce, tomato, and crispy fries", "14.99", "/assets/generated_images/Classic_burger_and_fries_87d1cbb1.png"},
	{"Appetizers", "Caesar Salad", "Crisp romaine lettuce with parmesan, croutons, and Caesar dressing", "12.99", "/assets/generated_images/Caesar_salad_menu_item_a35f34ac.png"},
	{"Desserts", "Chocolate Lava Cake", "Warm chocolate cake with molten center and vanilla ice cream", "8.99", "/assets/generated_images/Chocolate_lava_cake_dessert_5b5aa89d.png"},
}

var staffMembers = []struct {
	name, email string
	role        models.StaffRole
}{
	{"Sarah Martinez", "sarah@restaurant.com", models.RoleServer},
	{"Mike Davis", "mike@restaurant.com", models.RoleChef},
	{"Emma Lopez", "emma@restaurant.com", models.RoleServer},
	{"John Manager", "john@restaurant.com", models.RoleManager},
}

var customers = []models.NewCustomer{
	{Name: "Alice Johnson", Email: ptr("alice@email.com"), Phone: ptr("+1 234-567-8901"), Notes: ptr("Prefers window seating")},
	{Name: "Bob Wilson", Email: ptr("bob@email.com"), Phone: ptr("+1 234-567-8902")},
	{Name: "Carol Martinez", Email: ptr("carol@email.com"), Phone: ptr("+1 234-567-8903")},
}

// Run seeds repo unless it already holds a location. It reports whether
// anything was written.
func Run(ctx context.Context, repo storage.Repository, log *slog.Logger) (bool, error) {
	existing, err := repo.ListLocations(ctx)
	if err != nil {
		return false, fmt.Errorf("check existing data: %w", err)
	}
	if len(existing) > 0 {
		log.Info("seed skipped, repository already has data")
		return false, nil
	}

	var home models.Location
	for i, in := range locations {
		loc, err := repo.CreateLocation(ctx, in)
		if err != nil {
			return false, fmt.Errorf("create location %s: %w", in.Name, err)
		}
		if i == 0 {
			home = loc
		}
	}

	categoryIDs := make(map[string]string, len(categories))
	for i, name := range categories {
		cat, err := repo.CreateMenuCategory(ctx, models.NewMenuCategory{Name: name, DisplayOrder: ptr(i + 1)})
		if err != nil {
			return false, fmt.Errorf("create category %s: %w", name, err)
		}
		categoryIDs[name] = cat.ID
	}
	for _, d := range dishes {
		_, err := repo.CreateMenuItem(ctx, models.NewMenuItem{
			Name:        d.name,
			Description: ptr(d.description),
			Price:       d.price,
			CategoryID:  ptr(categoryIDs[d.category]),
			ImageURL:    ptr(d.image),
		})
		if err != nil {
			return false, fmt.Errorf("create menu item %s: %w", d.name, err)
		}
	}

	mainDining, err := repo.CreateArea(ctx, models.NewArea{LocationID: home.ID, Name: "Main Dining", Description: ptr("Primary dining area")})
	if err != nil {
		return false, fmt.Errorf("create area: %w", err)
	}
	patio, err := repo.CreateArea(ctx, models.NewArea{LocationID: home.ID, Name: "Patio", Description: ptr("Outdoor seating")})
	if err != nil {
		return false, fmt.Errorf("create area: %w", err)
	}

	var server models.Staff
	for i, s := range staffMembers {
		member, err := repo.CreateStaff(ctx, models.NewStaff{Name: s.name, Email: s.email, Role: s.role, LocationID: ptr(home.ID)})
		if err != nil {
			return false, fmt.Errorf("create staff %s: %w", s.name, err)
		}
		if i == 0 {
			server = member
		}
	}

	for i := 1; i <= 12; i++ {
		if _, err := repo.CreateTable(ctx, demoTable(i, home.ID, mainDining.ID, patio.ID, server.ID)); err != nil {
			return false, fmt.Errorf("create table %d: %w", i, err)
		}
	}

	for _, in := range customers {
		if _, err := repo.CreateCustomer(ctx, in); err != nil {
			return false, fmt.Errorf("create customer %s: %w", in.Name, err)
		}
	}

	_, err = repo.CreateSettings(ctx, models.NewRestaurantSettings{
		LocationID:     ptr(home.ID),
		RestaurantName: "The Fine Dining",
		Tagline:        ptr("Experience culinary excellence"),
	})
	if err != nil {
		return false, fmt.Errorf("create settings: %w", err)
	}

	log.Info("seeded demo data", slog.String("location_id", home.ID))
	return true, nil
}

// demoTable lays out twelve tables: small ones first, the first three
// occupied and served, the fourth reserved.
func demoTable(n int, locationID, evenArea, oddArea, serverID string) models.NewTable {
	capacity := 8
	switch {
	case n <= 4:
		capacity = 2
	case n <= 8:
		capacity = 4
	case n <= 10:
		capacity = 6
	}
	area := oddArea
	if n%2 == 0 {
		area = evenArea
	}
	t := models.NewTable{
		LocationID:  locationID,
		AreaID:      ptr(area),
		TableNumber: strconv.Itoa(n),
		Capacity:    capacity,
		Status:      ptr(models.TableAvailable),
	}
	switch {
	case n <= 3:
		t.Status = ptr(models.TableOccupied)
		t.CurrentPartySize = ptr(capacity - 1)
		t.ServerID = ptr(serverID)
	case n == 4:
		t.Status = ptr(models.TableReserved)
	}
	return t
}

package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. It expects a MySQL
// instance on localhost:3306 with a database named 'orientalgroup_test'
// and skips the test when none is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/orientalgroup_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables (children before parents) and
// closes the handle.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{
		"order_items", "orders", "contact_submissions",
		"blog_posts", "blog_categories",
		"services", "partners", "mission_points",
		"products", "users",
	}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the full schema used by the repository tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	statements := []struct {
		name  string
		query string
	}{
		{"products", `
			CREATE TABLE IF NOT EXISTS products (
				id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
				title VARCHAR(255) NOT NULL,
				description TEXT NOT NULL,
				image_path VARCHAR(500),
				color_class VARCHAR(100),
				is_featured TINYINT(1) NOT NULL DEFAULT 0,
				display_order INT NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				INDEX idx_featured (is_featured)
			)`},
		{"orders", `
			CREATE TABLE IF NOT EXISTS orders (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				customer_name VARCHAR(255) NOT NULL,
				customer_email VARCHAR(255) NOT NULL,
				customer_phone VARCHAR(50),
				shipping_address TEXT NOT NULL,
				status VARCHAR(50) NOT NULL DEFAULT 'pending',
				quote_amount DECIMAL(10,2),
				quote_notes TEXT,
				quoted_at DATETIME,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				INDEX idx_email (customer_email),
				INDEX idx_status (status)
			)`},
		{"order_items", `
			CREATE TABLE IF NOT EXISTS order_items (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				order_id INT UNSIGNED NOT NULL,
				product_id INT NOT NULL,
				quantity INT NOT NULL DEFAULT 1,
				FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
				FOREIGN KEY (product_id) REFERENCES products(id),
				INDEX idx_order (order_id)
			)`},
		{"contact_submissions", `
			CREATE TABLE IF NOT EXISTS contact_submissions (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				email VARCHAR(255) NOT NULL,
				phone VARCHAR(50),
				subject VARCHAR(500),
				message TEXT NOT NULL,
				is_read TINYINT(1) NOT NULL DEFAULT 0,
				status VARCHAR(50) NOT NULL DEFAULT 'pending',
				admin_reply TEXT,
				replied_at DATETIME,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_read (is_read)
			)`},
		{"users", `
			CREATE TABLE IF NOT EXISTS users (
				id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				email VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				role VARCHAR(50) NOT NULL DEFAULT 'user',
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`},
		{"blog_categories", `
			CREATE TABLE IF NOT EXISTS blog_categories (
				id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255) NOT NULL UNIQUE
			)`},
		{"blog_posts", `
			CREATE TABLE IF NOT EXISTS blog_posts (
				id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
				slug VARCHAR(255) NOT NULL UNIQUE,
				title VARCHAR(500) NOT NULL,
				excerpt TEXT,
				content LONGTEXT NOT NULL,
				image_path VARCHAR(500),
				category_id INT,
				author_id INT UNSIGNED,
				published_date DATETIME,
				is_published TINYINT(1) NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				FOREIGN KEY (category_id) REFERENCES blog_categories(id) ON DELETE SET NULL,
				INDEX idx_published (is_published)
			)`},
		{"services", `
			CREATE TABLE IF NOT EXISTS services (
				id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
				title VARCHAR(255) NOT NULL,
				description TEXT NOT NULL,
				icon_name VARCHAR(100),
				display_order INT NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			)`},
		{"partners", `
			CREATE TABLE IF NOT EXISTS partners (
				id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				logo_path VARCHAR(500),
				website_url VARCHAR(500),
				display_order INT NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			)`},
		{"mission_points", `
			CREATE TABLE IF NOT EXISTS mission_points (
				id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
				text TEXT NOT NULL,
				icon_name VARCHAR(100),
				display_order INT NOT NULL DEFAULT 0,
				created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
			)`},
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt.query); err != nil {
			t.Fatalf("failed to create table %s: %v", stmt.name, err)
		}
	}
}

// InsertTestProduct seeds one product row and returns its id.
func InsertTestProduct(t *testing.T, db *sql.DB, title string) int {
	res, err := db.Exec(
		`INSERT INTO products (title, description) VALUES (?, ?)`,
		title, "test description",
	)
	if err != nil {
		t.Fatalf("failed to insert test product: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read product id: %v", err)
	}
	return int(id)
}

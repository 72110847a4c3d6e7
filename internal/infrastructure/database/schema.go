package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/AnushkaAn/Online-Auction-Platform/internal/config"
)

// Dialect holds the few DDL fragments that differ between engines.
type Dialect struct {
	Name          string
	AutoIncrement string
	Float         string
}

var (
	MySQLDialect = Dialect{
		Name:          config.DriverMySQL,
		AutoIncrement: "INT AUTO_INCREMENT PRIMARY KEY",
		Float:         "DOUBLE",
	}
	SQLiteDialect = Dialect{
		Name:          config.DriverSQLite,
		AutoIncrement: "INTEGER PRIMARY KEY AUTOINCREMENT",
		Float:         "REAL",
	}
)

// DialectFor returns the dialect for a driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverMySQL:
		return MySQLDialect, nil
	case config.DriverSQLite:
		return SQLiteDialect, nil
	default:
		return Dialect{}, fmt.Errorf("no dialect for driver %q", driver)
	}
}

// Tables in creation order; every table only references tables above it.
var tables = []struct {
	name string
	ddl  string
}{
	{"users", `
        CREATE TABLE IF NOT EXISTS users (
            user_id {{pk}},
            first_name VARCHAR(50),
            last_name VARCHAR(50),
            street_no VARCHAR(10),
            street_name VARCHAR(50),
            city VARCHAR(50),
            state VARCHAR(50),
            zipcode VARCHAR(10),
            country VARCHAR(50),
            email VARCHAR(100) UNIQUE,
            phone VARCHAR(15),
            password VARCHAR(100)
        )`},
	{"administrator", `
        CREATE TABLE IF NOT EXISTS administrator (
            admin_id {{pk}},
            first_name VARCHAR(50),
            last_name VARCHAR(50),
            email VARCHAR(100) UNIQUE,
            password VARCHAR(100)
        )`},
	{"product_category", `
        CREATE TABLE IF NOT EXISTS product_category (
            category_id {{pk}},
            name VARCHAR(50)
        )`},
	{"product", `
        CREATE TABLE IF NOT EXISTS product (
            product_id {{pk}},
            name VARCHAR(50),
            description TEXT,
            start_bid_amount {{float}},
            min_bid_increment {{float}},
            seller_id INT,
            category_id INT,
            FOREIGN KEY (seller_id) REFERENCES users(user_id),
            FOREIGN KEY (category_id) REFERENCES product_category(category_id)
        )`},
	{"auction", `
        CREATE TABLE IF NOT EXISTS auction (
            auction_id {{pk}},
            start_date DATE,
            close_date DATE,
            reserve_price {{float}},
            payment_date DATE,
            winner_first_name VARCHAR(50),
            winner_last_name VARCHAR(50),
            payment_amount {{float}},
            item_id INT,
            FOREIGN KEY (item_id) REFERENCES product(product_id)
        )`},
	{"bid", `
        CREATE TABLE IF NOT EXISTS bid (
            bid_number {{pk}},
            item_id INT,
            price {{float}},
            bid_time TIME,
            bid_date DATE,
            comment TEXT,
            bidder_id INT,
            seller_id INT,
            auction_id INT,
            FOREIGN KEY (item_id) REFERENCES product(product_id),
            FOREIGN KEY (bidder_id) REFERENCES users(user_id),
            FOREIGN KEY (seller_id) REFERENCES users(user_id),
            FOREIGN KEY (auction_id) REFERENCES auction(auction_id)
        )`},
	{"feedback", `
        CREATE TABLE IF NOT EXISTS feedback (
            feedback_id {{pk}},
            feedback_time TIME,
            feedback_date DATE,
            satisfaction_rating INT,
            shipping_delivery VARCHAR(50),
            seller_cooperation INT,
            overall_rating INT,
            seller_id INT,
            buyer_id INT,
            FOREIGN KEY (seller_id) REFERENCES users(user_id),
            FOREIGN KEY (buyer_id) REFERENCES users(user_id)
        )`},
	{"shipment", `
        CREATE TABLE IF NOT EXISTS shipment (
            shipment_id {{pk}},
            planned_date DATE,
            actual_date DATE,
            cost {{float}},
            item_id INT,
            FOREIGN KEY (item_id) REFERENCES product(product_id)
        )`},
	{"payment_method", `
        CREATE TABLE IF NOT EXISTS payment_method (
            method_code {{pk}},
            description VARCHAR(100),
            auction_id INT,
            FOREIGN KEY (auction_id) REFERENCES auction(auction_id)
        )`},
}

// TableNames lists the managed tables in creation order.
func TableNames() []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.name
	}
	return names
}

type SQLSchemaManager struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLSchemaManager(db *sql.DB, dialect Dialect) *SQLSchemaManager {
	return &SQLSchemaManager{db: db, dialect: dialect}
}

// EnsureSchema creates any missing table. It is safe to run on every start.
func (m *SQLSchemaManager) EnsureSchema(ctx context.Context) error {
	for _, t := range tables {
		if _, err := m.db.ExecContext(ctx, m.render(t.ddl)); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, classify(err))
		}
	}
	return nil
}

func (m *SQLSchemaManager) render(ddl string) string {
	return strings.NewReplacer(
		"{{pk}}", m.dialect.AutoIncrement,
		"{{float}}", m.dialect.Float,
	).Replace(ddl)
}

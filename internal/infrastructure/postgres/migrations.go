package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema es el esquema completo de la base. Cuatro tablas: items, movements,
// suppliers y orders. Las líneas, el historial de estados y los mensajes de
// una orden se guardan como snapshots JSONB embebidos; movements referencia a
// items por id sin FK (las referencias huérfanas se toleran).
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id            UUID PRIMARY KEY,
    name          TEXT NOT NULL,
    sku           TEXT NOT NULL,
    category      TEXT NOT NULL DEFAULT '',
    supplier      TEXT NOT NULL DEFAULT '',
    quantity      NUMERIC(14,3) NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    unit          TEXT NOT NULL DEFAULT '',
    price         NUMERIC(14,2) NOT NULL DEFAULT 0,
    batch         TEXT NOT NULL DEFAULT '',
    entry_date    TIMESTAMPTZ,
    expiry_date   TIMESTAMPTZ,
    reorder_point NUMERIC(14,3) NOT NULL DEFAULT 0,
    description   TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);

CREATE TABLE IF NOT EXISTS movements (
    id         UUID PRIMARY KEY,
    item_id    UUID NOT NULL,
    type       TEXT NOT NULL CHECK (type IN ('IN', 'OUT')),
    quantity   NUMERIC(14,3) NOT NULL CHECK (quantity > 0),
    reason     TEXT NOT NULL,
    date       TIMESTAMPTZ NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_movements_date ON movements(date DESC);
CREATE INDEX IF NOT EXISTS idx_movements_item ON movements(item_id);

CREATE TABLE IF NOT EXISTS suppliers (
    id              UUID PRIMARY KEY,
    name            TEXT NOT NULL,
    rut             TEXT NOT NULL DEFAULT '',
    email           TEXT NOT NULL DEFAULT '',
    supplied_items  TEXT NOT NULL DEFAULT '',
    additional_info TEXT NOT NULL DEFAULT '',
    categories      TEXT[] NOT NULL DEFAULT '{}',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
    id                 UUID PRIMARY KEY,
    order_number       TEXT NOT NULL,
    supplier           TEXT NOT NULL DEFAULT '',
    status             TEXT NOT NULL DEFAULT 'pending'
        CHECK (status IN ('pending', 'processing', 'on_the_way', 'delivered', 'delayed', 'cancelled')),
    items              JSONB NOT NULL DEFAULT '[]',
    total              NUMERIC(14,2) NOT NULL DEFAULT 0,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    estimated_delivery TIMESTAMPTZ,
    delivery_address   TEXT NOT NULL DEFAULT '',
    payment_method     TEXT NOT NULL DEFAULT '',
    notes              TEXT NOT NULL DEFAULT '',
    status_history     JSONB NOT NULL DEFAULT '[]',
    messages           JSONB NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC);
`

// Migrate aplica el esquema al arrancar. Todas las sentencias son idempotentes.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}

// seed carga ítems y proveedores iniciales desde archivos CSV.
//
// Uso: go run ./cmd/seed [-latin1] [-items ruta/items.csv] [-suppliers ruta/suppliers.csv]
// Con -latin1 los CSV se decodifican desde ISO-8859-1 (exportes de planillas
// antiguas); sin la bandera se asume UTF-8.
//
// Columnas de items.csv:
//
//	name,sku,category,supplier,quantity,unit,price,batch,expiry_date,reorder_point,description
//
// Columnas de suppliers.csv (categorías separadas por "|"):
//
//	name,rut,email,insumo,additional_info,categories
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/infrastructure/postgres"
	"github.com/jhoicas/despensa-api/pkg/config"
)

func main() {
	itemsPath := flag.String("items", "items.csv", "CSV de ítems")
	suppliersPath := flag.String("suppliers", "suppliers.csv", "CSV de proveedores")
	latin1 := flag.Bool("latin1", false, "decodificar los CSV desde ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Aplicar esquema: %v\n", err)
		os.Exit(1)
	}

	itemRepo := postgres.NewItemRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)

	nItems, err := seedItems(itemRepo.Create, *itemsPath, *latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sembrar ítems: %v\n", err)
		os.Exit(1)
	}
	nSuppliers, err := seedSuppliers(supplierRepo.Create, *suppliersPath, *latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sembrar proveedores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sembrado completo: %d ítems, %d proveedores\n", nItems, nSuppliers)
}

func openCSV(path string, latin1 bool) (*csv.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	var r io.Reader = f
	if latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr, f.Close, nil
}

func seedItems(create func(*entity.Item) error, path string, latin1 bool) (int, error) {
	cr, closeFn, err := openCSV(path, latin1)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil // archivo opcional
		}
		return 0, err
	}
	defer closeFn()

	// Descartar encabezado
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}

	now := time.Now().UTC()
	count := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if len(rec) < 7 {
			return count, fmt.Errorf("fila %d: se esperaban al menos 7 columnas, hay %d", count+2, len(rec))
		}

		quantity, err := decimal.NewFromString(strings.TrimSpace(rec[4]))
		if err != nil {
			return count, fmt.Errorf("fila %d: cantidad inválida %q", count+2, rec[4])
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[6]))
		if err != nil {
			return count, fmt.Errorf("fila %d: precio inválido %q", count+2, rec[6])
		}

		item := &entity.Item{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(rec[0]),
			SKU:       strings.TrimSpace(rec[1]),
			Category:  strings.TrimSpace(rec[2]),
			Supplier:  strings.TrimSpace(rec[3]),
			Quantity:  quantity,
			Unit:      strings.TrimSpace(rec[5]),
			Price:     price,
			EntryDate: &now,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if len(rec) > 7 {
			item.Batch = strings.TrimSpace(rec[7])
		}
		if len(rec) > 8 && strings.TrimSpace(rec[8]) != "" {
			exp, err := time.Parse("2006-01-02", strings.TrimSpace(rec[8]))
			if err != nil {
				return count, fmt.Errorf("fila %d: fecha de vencimiento inválida %q", count+2, rec[8])
			}
			item.ExpiryDate = &exp
		}
		if len(rec) > 9 && strings.TrimSpace(rec[9]) != "" {
			rp, err := decimal.NewFromString(strings.TrimSpace(rec[9]))
			if err != nil {
				return count, fmt.Errorf("fila %d: punto de reposición inválido %q", count+2, rec[9])
			}
			item.ReorderPoint = rp
		}
		if len(rec) > 10 {
			item.Description = strings.TrimSpace(rec[10])
		}

		if err := create(item); err != nil {
			return count, fmt.Errorf("fila %d (%s): %w", count+2, item.Name, err)
		}
		count++
	}
	return count, nil
}

func seedSuppliers(create func(*entity.Supplier) error, path string, latin1 bool) (int, error) {
	cr, closeFn, err := openCSV(path, latin1)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer closeFn()

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}

	now := time.Now().UTC()
	count := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if len(rec) < 2 {
			return count, fmt.Errorf("fila %d: se esperaban al menos 2 columnas, hay %d", count+2, len(rec))
		}

		sup := &entity.Supplier{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(rec[0]),
			RUT:       strings.TrimSpace(rec[1]),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if len(rec) > 2 {
			sup.Email = strings.TrimSpace(rec[2])
		}
		if len(rec) > 3 {
			sup.SuppliedItems = strings.TrimSpace(rec[3])
		}
		if len(rec) > 4 {
			sup.AdditionalInfo = strings.TrimSpace(rec[4])
		}
		if len(rec) > 5 && strings.TrimSpace(rec[5]) != "" {
			for _, c := range strings.Split(rec[5], "|") {
				if c = strings.TrimSpace(c); c != "" {
					sup.Categories = append(sup.Categories, c)
				}
			}
		}

		if err := create(sup); err != nil {
			return count, fmt.Errorf("fila %d (%s): %w", count+2, sup.Name, err)
		}
		count++
	}
	return count, nil
}

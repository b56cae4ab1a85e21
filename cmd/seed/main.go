// seed genera el script SQL para poblar el catálogo de productos y el stock
// inicial a partir del XML de catálogo exportado por el ERP de planta
// (codificado en ISO-8859-1, como los exportes legacy).
//
// Uso: go run ./cmd/seed [ruta/Catalogo.xml]
// Por defecto busca Catalogo.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogo struct {
	Productos []producto `xml:"producto"`
}

type producto struct {
	SKU    string `xml:"sku,attr"`
	Nombre string `xml:"nombre,attr"`
	Stock  struct {
		Inicial string `xml:"inicial,attr"`
	} `xml:"stock"`
}

func main() {
	xmlPath := "Catalogo.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var cat catalogo
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&cat); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	// Filtrar entradas incompletas y ordenar por SKU para salida estable
	var items []producto
	for _, p := range cat.Productos {
		if strings.TrimSpace(p.SKU) == "" || strings.TrimSpace(p.Nombre) == "" {
			continue
		}
		items = append(items, p)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].SKU < items[j].SKU })

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de productos y stock inicial\n")
	out.WriteString("-- Generado desde Catalogo.xml (exporte del ERP de planta)\n\n")

	out.WriteString("-- 1. Productos\n")
	for _, p := range items {
		fmt.Fprintf(out, "INSERT INTO products (id, name, sku)\nVALUES (gen_random_uuid(), '%s', '%s')\nON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name;\n",
			escapeSQL(strings.TrimSpace(p.Nombre)), escapeSQL(strings.TrimSpace(p.SKU)))
	}

	// 2. Stock inicial como primer movimiento del libro
	out.WriteString("\n-- 2. Stock inicial (primer movimiento del libro)\n")
	seeded := 0
	for _, p := range items {
		qty := strings.TrimSpace(p.Stock.Inicial)
		if qty == "" || qty == "0" {
			continue
		}
		fmt.Fprintf(out, "INSERT INTO stock_ledger (id, product_id, quantity_change, reason)\nSELECT gen_random_uuid(), id, %s, 'Inventario inicial' FROM products WHERE sku = '%s';\n",
			qty, escapeSQL(strings.TrimSpace(p.SKU)))
		seeded++
	}

	fmt.Printf("Generado %s: %d productos, %d con stock inicial\n", outPath, len(items), seeded)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

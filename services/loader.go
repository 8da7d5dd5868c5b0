package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DataFileName is the primary bid item file.
const DataFileName = "data.json"

// GRPSFileName returns the file name of one GRPS file, kind being
// "bid_items", "contract_items" or "scope_items".
func GRPSFileName(d Discipline, kind string) string {
	return fmt.Sprintf("grps_%s_%s.json", d, kind)
}

// PackageFileName returns the package mapping file of a discipline.
func PackageFileName(d Discipline) string {
	return fmt.Sprintf("Data/%s_package.txt", packageFilePrefix(d))
}

var grpsKinds = []string{"bid_items", "contract_items", "scope_items"}

// DataFiles lists every file the loader reads. Nothing outside this list is
// ever served from a Source.
func DataFiles() []string {
	files := []string{DataFileName}
	for _, d := range Disciplines() {
		for _, kind := range grpsKinds {
			files = append(files, GRPSFileName(d, kind))
		}
		files = append(files, PackageFileName(d))
	}
	return files
}

// Loader reads and parses every data file from a Source.
type Loader struct {
	src Source
}

// NewLoader returns a Loader reading from src.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// LoadBidData loads data.json. Any failure is fatal to the scope browser.
// Ref count mismatches are logged and otherwise ignored.
func (l *Loader) LoadBidData(ctx context.Context) (*BidData, error) {
	raw, err := l.src.ReadFile(ctx, DataFileName)
	if err != nil {
		return nil, fmt.Errorf("load bid data: %w", err)
	}
	bd, err := ParseBidData(raw)
	if err != nil {
		return nil, err
	}
	for _, m := range ValidateRefCounts(bd) {
		log.Printf("loader: ref count mismatch: %s", m)
	}
	return bd, nil
}

// LoadGRPS loads every discipline concurrently. A discipline's three files
// succeed or fail together; one discipline failing does not affect the others.
func (l *Loader) LoadGRPS(ctx context.Context) *GRPSData {
	out := &GRPSData{
		Datasets: make(map[Discipline]*GRPSDataset),
		Errors:   make(map[Discipline]error),
	}

	// Failures are recorded per discipline rather than returned, so one
	// discipline never cancels the others.
	var mu sync.Mutex
	var g errgroup.Group
	for _, d := range Disciplines() {
		g.Go(func() error {
			ds, err := l.LoadDiscipline(ctx, d)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("loader: error loading %s GRPS data: %v", d, err)
				out.Errors[d] = err
				return nil
			}
			out.Datasets[d] = ds
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// LoadDiscipline fetches and parses the bid, contract and scope item files of
// one discipline.
func (l *Loader) LoadDiscipline(ctx context.Context, d Discipline) (*GRPSDataset, error) {
	var (
		bids     []GRPSBidItem
		contract RawContractItems
		scopes   []ScopeItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := l.src.ReadFile(gctx, GRPSFileName(d, "bid_items"))
		if err != nil {
			return err
		}
		bids, err = ParseGRPSBidItems(raw)
		return err
	})
	g.Go(func() error {
		raw, err := l.src.ReadFile(gctx, GRPSFileName(d, "contract_items"))
		if err != nil {
			return err
		}
		contract, err = DecodeContractItems(d, raw)
		return err
	})
	g.Go(func() error {
		raw, err := l.src.ReadFile(gctx, GRPSFileName(d, "scope_items"))
		if err != nil {
			return err
		}
		scopes, err = ParseScopeItems(raw)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load %s: %w", d, err)
	}

	items, err := Normalize(contract)
	if err != nil {
		return nil, err
	}
	return &GRPSDataset{
		Discipline:    d,
		BidItems:      bids,
		ContractItems: items,
		ScopeItems:    scopes,
	}, nil
}

// LoadPackageMappings loads the three package mapping files as one batch. If
// any file fails the whole batch fails and an empty mapping is returned with
// the error.
func (l *Loader) LoadPackageMappings(ctx context.Context) (*PackageMappings, error) {
	disciplines := Disciplines()
	results := make([][]PackageGroup, len(disciplines))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range disciplines {
		g.Go(func() error {
			raw, err := l.src.ReadFile(gctx, PackageFileName(d))
			if err != nil {
				return err
			}
			groups, err := ParsePackageMapping(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", PackageFileName(d), err)
			}
			results[i] = groups
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("loader: error loading package mappings: %v", err)
		return NewPackageMappings(), fmt.Errorf("load package mappings: %w", err)
	}

	pm := NewPackageMappings()
	for i, d := range disciplines {
		pm.Groups[d] = results[i]
	}
	return pm, nil
}

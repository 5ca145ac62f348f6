package selfcheck

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/abgdnv/inventory/internal/product/csvcodec"
	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/abgdnv/inventory/internal/product/service"
	"github.com/abgdnv/inventory/internal/terminal"
)

type unitCheck struct {
	name string
	run  func(s *scratch) error
}

var unitChecks = []unitCheck{
	{"add inserts new entry", checkAddInserts},
	{"add rejects duplicate IDs", checkAddRejectsDuplicate},
	{"add expands capacity", checkAddCapacity},
	{"add accepts zero values", checkAddZeroValues},
	{"add handles max int values", checkAddMaxValues},
	{"add rejects empty name", checkAddRejectsName("UT013", "")},
	{"add rejects whitespace name", checkAddRejectsName("UT014", "   \t")},
	{"add handles max-length strings", checkAddMaxLengthStrings},
	{"add persists data to CSV", checkAddPersists},
	{"add appends after manual seed", checkAddAppendsAfterSeed},
	{"update changes all fields", checkUpdateAllFields},
	{"update supports partial updates", checkUpdatePartial},
	{"update fails for missing ID", checkUpdateMissing},
	{"update fails with empty inventory", checkUpdateEmptyInventory},
	{"update handles max int values", checkUpdateMaxValues},
	{"update ignores negative numbers", checkUpdateNegative},
	{"update sets zero values", checkUpdateZeroValues},
	{"update preserves other records", checkUpdatePreservesOthers},
	{"update rejects empty name", checkUpdateRejectsEmptyName},
}

// UnitTests runs the catalog suite and prints one line per check and a summary.
func (r *Runner) UnitTests(term terminal.Terminal) {
	r.runUnit(term)
}

func (r *Runner) runUnit(w io.Writer) Summary {
	fmt.Fprint(w, "Running unit tests...\n\n")
	summary := Summary{Total: len(unitChecks)}
	for _, check := range unitChecks {
		err := r.runCheck(check)
		if err != nil {
			r.logger.Warn("Self-check failed", "check", check.name, "error", err)
			r.fail(w, check.name, err)
			continue
		}
		summary.Passed++
		r.pass(w, check.name)
	}
	fmt.Fprintf(w, "\nTest summary: %d/%d passed.\n", summary.Passed, summary.Total)
	r.logger.Info("Unit self-check finished", "passed", summary.Passed, "total", summary.Total)
	return summary
}

func (r *Runner) runCheck(check unitCheck) error {
	s, err := r.newScratch()
	if err != nil {
		return err
	}
	defer s.close()
	if _, err := s.service.Load(); err != nil {
		return err
	}
	return check.run(s)
}

// seed puts products straight into the store without saving, like a hand-filled catalog.
func seed(s *scratch, products ...service.ProductDto) {
	records := make([][]string, len(products))
	for i, p := range products {
		records[i] = csvcodec.DecodeLine(csvcodec.EncodeRecord(p.ID, p.Name, p.Quantity, p.UnitPrice))
	}
	s.store.Load(records)
}

func expectProduct(s *scratch, want service.ProductDto) error {
	got, err := s.service.FindByID(want.ID)
	if err != nil {
		return err
	}
	if *got != want {
		return fmt.Errorf("product %s is %+v, want %+v", want.ID, *got, want)
	}
	return nil
}

func expectCount(s *scratch, want int) error {
	if got := s.service.Count(); got != want {
		return fmt.Errorf("expected %d products, got %d", want, got)
	}
	return nil
}

func create(s *scratch, id, name string, quantity, unitPrice int) error {
	_, err := s.service.Create(service.ProductCreateDto{ID: id, Name: name, Quantity: quantity, UnitPrice: unitPrice})
	return err
}

func checkAddInserts(s *scratch) error {
	if err := create(s, "UT001", "Test Widget", 5, 100); err != nil {
		return err
	}
	if err := expectCount(s, 1); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "UT001", Name: "Test Widget", Quantity: 5, UnitPrice: 100})
}

func checkAddRejectsDuplicate(s *scratch) error {
	if err := create(s, "UT002", "Initial", 10, 200); err != nil {
		return err
	}
	if err := create(s, "UT002", "Duplicate", 5, 50); !errors.Is(err, perrors.ErrDuplicateID) {
		return fmt.Errorf("expected duplicate rejection, got %v", err)
	}
	if err := expectCount(s, 1); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "UT002", Name: "Initial", Quantity: 10, UnitPrice: 200})
}

func checkAddCapacity(s *scratch) error {
	const toInsert = 15
	for i := 0; i < toInsert; i++ {
		if err := create(s, fmt.Sprintf("CAP%03d", i), fmt.Sprintf("Capacity Test %d", i), i, i*10); err != nil {
			return fmt.Errorf("add failed at index %d: %w", i, err)
		}
	}
	if err := expectCount(s, toInsert); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "CAP014", Name: "Capacity Test 14", Quantity: 14, UnitPrice: 140})
}

func checkAddZeroValues(s *scratch) error {
	if err := create(s, "UT011", "ZeroCase", 0, 0); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "UT011", Name: "ZeroCase"})
}

func checkAddMaxValues(s *scratch) error {
	if err := create(s, "UT012", "MaxCase", math.MaxInt32, math.MaxInt32); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "UT012", Name: "MaxCase", Quantity: math.MaxInt32, UnitPrice: math.MaxInt32})
}

func checkAddRejectsName(id, name string) func(s *scratch) error {
	return func(s *scratch) error {
		if err := create(s, id, name, 1, 1); !errors.Is(err, perrors.ErrInvalidProduct) {
			return fmt.Errorf("expected name %q to be rejected, got %v", name, err)
		}
		return expectCount(s, 0)
	}
}

func checkAddMaxLengthStrings(s *scratch) error {
	var id, name strings.Builder
	for i := 0; i < service.MaxIDLength; i++ {
		id.WriteByte(byte('A' + i%26))
	}
	for i := 0; i < service.MaxNameLength; i++ {
		name.WriteByte(byte('a' + i%26))
	}
	if err := create(s, id.String(), name.String(), 9, 99); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: id.String(), Name: name.String(), Quantity: 9, UnitPrice: 99})
}

func checkAddPersists(s *scratch) error {
	if err := create(s, "UT010", "Persist", 3, 30); err != nil {
		return err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	want := csvcodec.Header + "\nUT010,Persist,3,30\n"
	if string(data) != want {
		return fmt.Errorf("catalog file is %q, want %q", data, want)
	}
	return nil
}

func checkAddAppendsAfterSeed(s *scratch) error {
	seed(s,
		service.ProductDto{ID: "UT020", Name: "SeedOne", Quantity: 2, UnitPrice: 20},
		service.ProductDto{ID: "UT021", Name: "SeedTwo", Quantity: 4, UnitPrice: 40},
	)
	if err := create(s, "UT022", "SeedThree", 6, 60); err != nil {
		return err
	}
	all := s.service.FindAll()
	if len(all) != 3 || all[0].Name != "SeedOne" || all[1].Name != "SeedTwo" || all[2].ID != "UT022" {
		return fmt.Errorf("unexpected catalog after append: %+v", all)
	}
	return expectProduct(s, service.ProductDto{ID: "UT022", Name: "SeedThree", Quantity: 6, UnitPrice: 60})
}

func update(s *scratch, id string, name *string, quantity, unitPrice int) error {
	_, err := s.service.Update(id, service.ProductUpdateDto{Name: name, Quantity: quantity, UnitPrice: unitPrice})
	return err
}

func ptr(s string) *string {
	return &s
}

func checkUpdateAllFields(s *scratch) error {
	seed(s, service.ProductDto{ID: "UT003", Name: "Original", Quantity: 1, UnitPrice: 10})
	if err := update(s, "UT003", ptr("Updated"), 25, 500); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "UT003", Name: "Updated", Quantity: 25, UnitPrice: 500})
}

func checkUpdatePartial(s *scratch) error {
	seed(s, service.ProductDto{ID: "UT004", Name: "KeepName", Quantity: 7, UnitPrice: 70})
	if err := update(s, "UT004", nil, -1, 90); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "UT004", Name: "KeepName", Quantity: 7, UnitPrice: 90})
}

func checkUpdateMissing(s *scratch) error {
	seed(s, service.ProductDto{ID: "UT005", Name: "Original", Quantity: 1, UnitPrice: 10})
	if err := update(s, "UNKNOWN", ptr("Won't Matter"), 2, 20); !errors.Is(err, perrors.ErrProductNotFound) {
		return fmt.Errorf("expected not found, got %v", err)
	}
	return expectProduct(s, service.ProductDto{ID: "UT005", Name: "Original", Quantity: 1, UnitPrice: 10})
}

func checkUpdateEmptyInventory(s *scratch) error {
	if err := update(s, "UT999", ptr("Nope"), 1, 1); !errors.Is(err, perrors.ErrProductNotFound) {
		return fmt.Errorf("expected not found, got %v", err)
	}
	return expectCount(s, 0)
}

func checkUpdateMaxValues(s *scratch) error {
	seed(s, service.ProductDto{ID: "UT033", Name: "MaxTarget", Quantity: 1, UnitPrice: 1})
	if err := update(s, "UT033", ptr("MaxTarget"), math.MaxInt32, math.MaxInt32); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "UT033", Name: "MaxTarget", Quantity: math.MaxInt32, UnitPrice: math.MaxInt32})
}

func checkUpdateNegative(s *scratch) error {
	seed(s, service.ProductDto{ID: "UT034", Name: "NegTarget", Quantity: 12, UnitPrice: 120})
	if err := update(s, "UT034", ptr("NegTarget"), -10, -20); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "UT034", Name: "NegTarget", Quantity: 12, UnitPrice: 120})
}

func checkUpdateZeroValues(s *scratch) error {
	seed(s, service.ProductDto{ID: "UT035", Name: "ZeroUpdate", Quantity: 15, UnitPrice: 150})
	if err := update(s, "UT035", ptr("ZeroUpdate"), 0, 0); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "UT035", Name: "ZeroUpdate"})
}

func checkUpdatePreservesOthers(s *scratch) error {
	seed(s,
		service.ProductDto{ID: "UT030", Name: "Primary", Quantity: 11, UnitPrice: 110},
		service.ProductDto{ID: "UT031", Name: "Secondary", Quantity: 22, UnitPrice: 220},
	)
	if err := update(s, "UT031", ptr("SecondaryUpdated"), 33, 330); err != nil {
		return err
	}
	if err := expectProduct(s, service.ProductDto{ID: "UT030", Name: "Primary", Quantity: 11, UnitPrice: 110}); err != nil {
		return err
	}
	return expectProduct(s, service.ProductDto{ID: "UT031", Name: "SecondaryUpdated", Quantity: 33, UnitPrice: 330})
}

func checkUpdateRejectsEmptyName(s *scratch) error {
	seed(s, service.ProductDto{ID: "UT032", Name: "NonEmpty", Quantity: 5, UnitPrice: 50})
	if err := update(s, "UT032", ptr(""), 8, 80); !errors.Is(err, perrors.ErrInvalidProduct) {
		return fmt.Errorf("expected empty name to be rejected, got %v", err)
	}
	return expectProduct(s, service.ProductDto{ID: "UT032", Name: "NonEmpty", Quantity: 5, UnitPrice: 50})
}

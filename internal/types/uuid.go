package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex inv_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateInvoiceNumber returns a short human-readable invoice number,
// e.g. `INV-X8Q2ZA1`. Uniqueness is enforced by the invoices table.
func GenerateInvoiceNumber() string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}

	return fmt.Sprintf("INV-%s", strings.ToUpper(id))
}

const (
	UUID_PREFIX_PROPERTY            = "prop"
	UUID_PREFIX_UNIT                = "unit"
	UUID_PREFIX_CUSTOMER            = "cust"
	UUID_PREFIX_CONTRACT            = "con"
	UUID_PREFIX_INVOICE             = "inv"
	UUID_PREFIX_PAYMENT             = "pay"
	UUID_PREFIX_MAINTENANCE_REQUEST = "mnt"
	UUID_PREFIX_APPOINTMENT         = "appt"
	UUID_PREFIX_LEAD                = "lead"
	UUID_PREFIX_REQUEST             = "req"
)

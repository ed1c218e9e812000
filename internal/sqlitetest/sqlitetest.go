// Package sqlitetest opens named in-memory sqlite databases whose error
// translation matches the production postgres store.
package sqlitetest

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// dialector augments the sqlite driver's error translation. The driver maps
// insert-path foreign key failures (extended code 787) to
// gorm.ErrForeignKeyViolated, but a DELETE blocked by a child row reports
// extended code 1811 (SQLITE_CONSTRAINT_TRIGGER), which the driver leaves
// untranslated. Without this mapping, restricted deletes would surface as
// plain errors instead of IntegrityError.
type dialector struct {
	gorm.Dialector
}

func (d dialector) Translate(err error) error {
	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintTrigger {
		return gorm.ErrForeignKeyViolated
	}
	if translator, ok := d.Dialector.(interface{ Translate(error) error }); ok {
		return translator.Translate(err)
	}
	return err
}

// Open returns a dialector for a shared in-memory database with foreign key
// enforcement on. name keeps concurrently open test databases apart.
func Open(name string) gorm.Dialector {
	return dialector{sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name))}
}

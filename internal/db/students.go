package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/marcus/duty/internal/models"
)

var (
	// ErrNotFound is returned when no student has the requested ID
	ErrNotFound = errors.New("student not found")
	// ErrDuplicateID is returned when creating a student whose ID is taken
	ErrDuplicateID = errors.New("student id already exists")
)

const studentColumns = `id, name, is_manager, building, unavailables, created_at, updated_at`

// CreateStudent inserts a new student. An empty ID is filled in.
func (db *DB) CreateStudent(s *models.Student) error {
	s.ID = NormalizeStudentID(s.ID)
	if s.ID == "" {
		s.ID = NewStudentID()
	}

	exists, err := db.studentExists(s.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
	}

	unavailables, err := encodeDays(s.Unavailables)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Second)
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err = db.conn.Exec(`
		INSERT INTO students (`+studentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Name, s.IsManager, s.Building, unavailables, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

// SaveStudent overwrites an existing student's fields
func (db *DB) SaveStudent(s *models.Student) error {
	s.ID = NormalizeStudentID(s.ID)

	unavailables, err := encodeDays(s.Unavailables)
	if err != nil {
		return err
	}

	s.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	res, err := db.conn.Exec(`
		UPDATE students
		SET name = ?, is_manager = ?, building = ?, unavailables = ?, updated_at = ?
		WHERE id = ?
	`, s.Name, s.IsManager, s.Building, unavailables, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, s.ID)
	}
	return nil
}

// RenameStudent moves the student stored under oldID to s.ID and overwrites
// its fields in one transaction. CreatedAt is kept.
func (db *DB) RenameStudent(oldID string, s *models.Student) error {
	oldID = NormalizeStudentID(oldID)
	s.ID = NormalizeStudentID(s.ID)
	if s.ID == "" {
		s.ID = oldID
	}
	if s.ID == oldID {
		return db.SaveStudent(s)
	}

	unavailables, err := encodeDays(s.Unavailables)
	if err != nil {
		return err
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("rename student: %w", err)
	}
	defer tx.Rollback()

	var taken int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM students WHERE id = ?`, s.ID).Scan(&taken); err != nil {
		return fmt.Errorf("rename student: %w", err)
	}
	if taken > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
	}

	s.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	res, err := tx.Exec(`
		UPDATE students
		SET id = ?, name = ?, is_manager = ?, building = ?, unavailables = ?, updated_at = ?
		WHERE id = ?
	`, s.ID, s.Name, s.IsManager, s.Building, unavailables, s.UpdatedAt, oldID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		return fmt.Errorf("rename student: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rename student: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, oldID)
	}

	if err := tx.QueryRow(`SELECT created_at FROM students WHERE id = ?`, s.ID).Scan(&s.CreatedAt); err != nil {
		return fmt.Errorf("rename student: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("rename student: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// GetStudent retrieves a student by ID
func (db *DB) GetStudent(id string) (*models.Student, error) {
	id = NormalizeStudentID(id)
	row := db.conn.QueryRow(`SELECT `+studentColumns+` FROM students WHERE id = ?`, id)

	s, err := scanStudent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListStudentsOptions filters ListStudents
type ListStudentsOptions struct {
	Building     int  // 0 = any
	ManagersOnly bool // only students flagged as manager
	// AvailableOn keeps students not marked unavailable on that day (0 = any)
	AvailableOn int
}

// ListStudents returns students ordered by building then name
func (db *DB) ListStudents(opts ListStudentsOptions) ([]models.Student, error) {
	var (
		conds []string
		args  []any
	)
	if opts.Building > 0 {
		conds = append(conds, "building = ?")
		args = append(args, opts.Building)
	}
	if opts.ManagersOnly {
		conds = append(conds, "is_manager = 1")
	}

	query := `SELECT ` + studentColumns + ` FROM students`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY building, name COLLATE NOCASE"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		if opts.AvailableOn > 0 && s.IsUnavailable(opts.AvailableOn) {
			continue
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// DeleteStudent removes a student
func (db *DB) DeleteStudent(id string) error {
	id = NormalizeStudentID(id)
	res, err := db.conn.Exec(`DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (db *DB) studentExists(id string) (bool, error) {
	var n int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM students WHERE id = ?`, id).Scan(&n); err != nil {
		return false, fmt.Errorf("check student: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	var (
		s            models.Student
		unavailables string
	)
	if err := row.Scan(&s.ID, &s.Name, &s.IsManager, &s.Building, &unavailables, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	days, err := decodeDays(unavailables)
	if err != nil {
		return nil, fmt.Errorf("student %s: %w", s.ID, err)
	}
	s.Unavailables = days
	return &s, nil
}

// encodeDays stores days as a sorted, deduplicated JSON array
func encodeDays(days []int) (string, error) {
	sorted := slices.Clone(days)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if sorted == nil {
		sorted = []int{}
	}
	data, err := json.Marshal(sorted)
	if err != nil {
		return "", fmt.Errorf("encode unavailables: %w", err)
	}
	return string(data), nil
}

func decodeDays(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var days []int
	if err := json.Unmarshal([]byte(s), &days); err != nil {
		return nil, fmt.Errorf("decode unavailables: %w", err)
	}
	return days, nil
}

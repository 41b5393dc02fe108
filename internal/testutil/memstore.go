// Package testutil provides an in-memory services.Store used by service and
// controller tests. It honors the same error contracts as the pgx-backed
// repositories, including the constraint violations the schema would raise.
package testutil

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"registrar/internal/app/models"
	"registrar/internal/app/repositories"
	"registrar/internal/app/services"
)

// MemStore is an in-memory implementation of services.Store.
type MemStore struct {
	mu sync.Mutex

	// Err, when set, makes every store operation fail with it.
	Err error

	students    map[int64]models.Student
	departments map[string]int64 // prefix -> id
	courses     map[int64]models.Course
	enrollments map[[2]int64]struct{} // (studentID, courseID)

	nextID int64
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{
		students:    make(map[int64]models.Student),
		departments: make(map[string]int64),
		courses:     make(map[int64]models.Course),
		enrollments: make(map[[2]int64]struct{}),
	}
}

// Repos implements services.Store
func (s *MemStore) Repos() services.TxRepositories {
	return services.TxRepositories{
		Students:    (*memStudents)(s),
		Departments: (*memDepartments)(s),
		Courses:     (*memCourses)(s),
		Enrollments: (*memEnrollments)(s),
	}
}

// InTx implements services.Store. There is no real transaction; fn simply
// runs against the shared state.
func (s *MemStore) InTx(ctx context.Context, fn func(ctx context.Context, r services.TxRepositories) error) error {
	return fn(ctx, s.Repos())
}

// StudentCount reports how many student rows exist
func (s *MemStore) StudentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.students)
}

// DepartmentCount reports how many department rows exist
func (s *MemStore) DepartmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.departments)
}

// CourseCount reports how many course rows exist
func (s *MemStore) CourseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.courses)
}

// EnrollmentCount reports how many enrollment rows exist
func (s *MemStore) EnrollmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.enrollments)
}

// CourseIDByKey resolves a course id by natural key for assertions
func (s *MemStore) CourseIDByKey(number, prefix string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deptID, ok := s.departments[prefix]
	if !ok {
		return 0, false
	}
	for _, c := range s.courses {
		if c.CourseNumber == number && c.DepartmentID == deptID {
			return c.ID, true
		}
	}
	return 0, false
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

type memStudents MemStore

func (m *memStudents) Create(ctx context.Context, student *models.Student) error {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.nextID++
	student.ID = s.nextID
	s.students[student.ID] = *student
	return nil
}

func (m *memStudents) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	student, ok := s.students[id]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	return &student, nil
}

func (m *memStudents) UpdateName(ctx context.Context, id int64, name string) (int64, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	student, ok := s.students[id]
	if !ok {
		return 0, nil
	}
	student.Name = name
	s.students[id] = student
	return 1, nil
}

func (m *memStudents) UpdateEmail(ctx context.Context, id int64, email string) (int64, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	student, ok := s.students[id]
	if !ok {
		return 0, nil
	}
	student.Email = &email
	s.students[id] = student
	return 1, nil
}

func (m *memStudents) UpdateNameAndEmail(ctx context.Context, id int64, name, email string) (int64, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	student, ok := s.students[id]
	if !ok {
		return 0, nil
	}
	student.Name = name
	student.Email = &email
	s.students[id] = student
	return 1, nil
}

func (m *memStudents) Delete(ctx context.Context, id int64) (int64, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.students[id]; !ok {
		return 0, nil
	}
	delete(s.students, id)
	for pair := range s.enrollments {
		if pair[0] == id {
			delete(s.enrollments, pair)
		}
	}
	return 1, nil
}

type memDepartments MemStore

func (m *memDepartments) Create(ctx context.Context, department *models.Department) error {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	// Upsert semantics, matching the ON CONFLICT insert
	if id, ok := s.departments[department.Prefix]; ok {
		department.ID = id
		return nil
	}
	s.nextID++
	department.ID = s.nextID
	s.departments[department.Prefix] = department.ID
	return nil
}

func (m *memDepartments) GetByPrefix(ctx context.Context, prefix string) (*models.Department, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	id, ok := s.departments[prefix]
	if !ok {
		return nil, repositories.ErrDepartmentNotFound
	}
	return &models.Department{ID: id, Prefix: prefix}, nil
}

type memCourses MemStore

func (m *memCourses) Create(ctx context.Context, course *models.Course) error {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.courses {
		if existing.CourseNumber == course.CourseNumber && existing.DepartmentID == course.DepartmentID {
			return uniqueViolation("course_number_department_key")
		}
	}
	s.nextID++
	course.ID = s.nextID
	s.courses[course.ID] = *course
	return nil
}

func (m *memCourses) GetByNaturalKey(ctx context.Context, courseNumber string, departmentID int64) (*models.Course, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, course := range s.courses {
		if course.CourseNumber == courseNumber && course.DepartmentID == departmentID {
			c := course
			return &c, nil
		}
	}
	return nil, repositories.ErrCourseNotFound
}

func (m *memCourses) UpdateName(ctx context.Context, name, courseNumber string, departmentID int64) (int64, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	var updated int64
	for id, course := range s.courses {
		if course.CourseNumber == courseNumber && course.DepartmentID == departmentID {
			course.Name = name
			s.courses[id] = course
			updated++
		}
	}
	return updated, nil
}

func (m *memCourses) Delete(ctx context.Context, id int64) (int64, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	if _, ok := s.courses[id]; !ok {
		return 0, nil
	}
	delete(s.courses, id)
	for pair := range s.enrollments {
		if pair[1] == id {
			delete(s.enrollments, pair)
		}
	}
	return 1, nil
}

type memEnrollments MemStore

func (m *memEnrollments) Create(ctx context.Context, enrollment *models.Enrollment) error {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.students[enrollment.StudentID]; !ok {
		return foreignKeyViolation("enrollment_student_id_fkey")
	}
	if _, ok := s.courses[enrollment.CourseID]; !ok {
		return foreignKeyViolation("enrollment_course_id_fkey")
	}
	pair := [2]int64{enrollment.StudentID, enrollment.CourseID}
	if _, ok := s.enrollments[pair]; ok {
		return uniqueViolation("enrollment_pair_key")
	}
	s.enrollments[pair] = struct{}{}
	return nil
}

func (m *memEnrollments) Delete(ctx context.Context, studentID, courseID int64) (int64, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	pair := [2]int64{studentID, courseID}
	if _, ok := s.enrollments[pair]; !ok {
		return 0, nil
	}
	delete(s.enrollments, pair)
	return 1, nil
}

func (m *memEnrollments) GetAll(ctx context.Context) ([]models.Enrollment, error) {
	s := (*MemStore)(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var enrollments []models.Enrollment
	for pair := range s.enrollments {
		enrollments = append(enrollments, models.Enrollment{StudentID: pair[0], CourseID: pair[1]})
	}
	return enrollments, nil
}

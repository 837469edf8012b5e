package tests

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/trezcool/shule/core/student"
	testutil "github.com/trezcool/shule/tests"
)

func Test_studentApi_studentQuery(t *testing.T) {
	resetDB(t)

	path := func(search, gradeLevel, status, ordering string) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		if gradeLevel != "" {
			v.Add("grade_level", gradeLevel)
		}
		if status != "" {
			v.Add("status", status)
		}
		if ordering != "" {
			v.Add("ordering", ordering)
		}
		return "/v1/students?" + v.Encode()
	}

	emma := testutil.CreateStudent(t, studentRepo, "Emma Johnson", "emma@school.edu", 5, "A", student.StatusActive)
	liam := testutil.CreateStudent(t, studentRepo, "Liam Smith", "liam@school.edu", 5, "B", student.StatusActive)
	olivia := testutil.CreateStudent(t, studentRepo, "Olivia Brown", "olivia@school.edu", 6, "A", student.StatusActive)
	noah := testutil.CreateStudent(t, studentRepo, "Noah Davis", "noah@school.edu", 6, "B", student.StatusInactive)

	empty := marchallList(t, []interface{}{}...)

	tests := []httpTest{
		{name: "Get all", path: "/v1/students", wantData: marchallList(t, emma, liam, olivia, noah)},
		// filtering
		{name: "search (unknown)", path: path("zzz", "", "", ""), wantData: empty},
		{name: "search by name", path: path("emma", "", "", ""), wantData: marchallList(t, emma)},
		{name: "search by email", path: path("LIAM@", "", "", ""), wantData: marchallList(t, liam)},
		{name: "grade_level=5", path: path("", "5", "", ""), wantData: marchallList(t, emma, liam)},
		{name: "grade_level=all", path: path("", "all", "", ""), wantData: marchallList(t, emma, liam, olivia, noah)},
		{name: "status=inactive", path: path("", "", "inactive", ""), wantData: marchallList(t, noah)},
		{name: "status=all", path: path("", "", "all", ""), wantData: marchallList(t, emma, liam, olivia, noah)},
		{name: "combo (empty)", path: path("emma", "6", "", ""), wantData: empty},
		{name: "combo (found)", path: path("o", "6", "active", ""), wantData: marchallList(t, olivia)},
		// ordering
		{name: "order by name", path: path("", "", "", "name"), wantData: marchallList(t, emma, liam, noah, olivia)},
		{name: "order by -name", path: path("", "", "", "-name"), wantData: marchallList(t, olivia, noah, liam, emma)},
		{name: "order by -grade_level,name", path: path("", "", "", "-grade_level,name"), wantData: marchallList(t, noah, olivia, emma, liam)},
		{name: "order by camelCase alias", path: path("", "", "", "-gradeLevel,name"), wantData: marchallList(t, noah, olivia, emma, liam)},
		{name: "unknown field ignored", path: path("", "", "", "lol"), wantData: marchallList(t, emma, liam, olivia, noah)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_studentApi_studentCreate(t *testing.T) {
	resetDB(t)

	tests := []httpTest{
		{
			name: "name required",
			body: marchallObj(t, student.NewStudent{GradeLevel: 5, Section: "A"}),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"name":"this field is required"}`),
		},
		{
			name: "section outside A-D",
			body: marchallObj(t, student.NewStudent{Name: "Mia Clark", GradeLevel: 5, Section: "Z"}),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"section":"invalid choice"}`),
		},
		{
			name: "bad email",
			body: marchallObj(t, student.NewStudent{Name: "Mia Clark", Email: "nope", GradeLevel: 5, Section: "A"}),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "created with defaults",
			body:     marchallObj(t, student.NewStudent{Name: "Mia Clark", Email: "MIA@school.edu", GradeLevel: 5, Section: "A"}),
			wantCode: http.StatusCreated,
		},
		{
			name:     "created with explicit enrollment date",
			body:     marchallObj(t, student.NewStudent{Name: "Ethan Hall", GradeLevel: 7, Section: "B", EnrollmentDate: "2024-09-02", Status: student.StatusInactive}),
			wantCode: http.StatusCreated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/students", tt.body)
			app.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("failed! code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode != http.StatusCreated {
				if tt.wantData != nil {
					if ok, _ := jsonBytesEqual(rec.Body.Bytes(), tt.wantData); !ok {
						t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
					}
				}
				return
			}

			var st student.Student
			if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
				t.Fatalf("json.Unmarshal() failed! err %v", err)
			}
			if st.ID == 0 {
				t.Error("failed! missing id")
			}
			switch tt.name {
			case "created with defaults":
				if st.Status != student.StatusActive {
					t.Errorf("status = %q; want %q", st.Status, student.StatusActive)
				}
				if st.Email != "mia@school.edu" {
					t.Errorf("email = %q; want lowercased", st.Email)
				}
				if st.EnrollmentDate.IsZero() {
					t.Error("enrollment date not defaulted")
				}
			case "created with explicit enrollment date":
				if want := testutil.Day(2024, time.September, 2); !st.EnrollmentDate.Equal(want) {
					t.Errorf("enrollment date = %v; want %v", st.EnrollmentDate, want)
				}
				if st.Status != student.StatusInactive {
					t.Errorf("status = %q; want %q", st.Status, student.StatusInactive)
				}
			}
		})
	}
}

func Test_studentApi_studentRetrieveUpdateDelete(t *testing.T) {
	resetDB(t)

	emma := testutil.CreateStudent(t, studentRepo, "Emma Johnson", "emma@school.edu", 5, "A", student.StatusActive)

	// retrieve
	req, rec := newRequest(http.MethodGet, "/v1/students/"+strconv.Itoa(emma.ID))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, emma)}, rec)

	// retrieve: malformed id
	req, rec = newRequest(http.MethodGet, "/v1/students/lol")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)}, rec)

	// retrieve: unknown id
	req, rec = newRequest(http.MethodGet, "/v1/students/666")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "student not found"})}, rec)

	// update: shallow merge keeps unset fields
	req, rec = newRequest(http.MethodPut, "/v1/students/"+strconv.Itoa(emma.ID), marchallObj(t, student.UpdateStudent{Section: "B"}))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed! code = %v; body %s", rec.Code, rec.Body.String())
	}
	var updated student.Student
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("json.Unmarshal() failed! err %v", err)
	}
	if updated.Section != "B" {
		t.Errorf("section = %q; want %q", updated.Section, "B")
	}
	if updated.Name != emma.Name || updated.Email != emma.Email || updated.GradeLevel != emma.GradeLevel {
		t.Errorf("unset fields were clobbered: %+v", updated)
	}

	// delete
	req, rec = newRequest(http.MethodDelete, "/v1/students/"+strconv.Itoa(emma.ID))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete failed! code = %v", rec.Code)
	}

	// delete again: gone
	req, rec = newRequest(http.MethodDelete, "/v1/students/"+strconv.Itoa(emma.ID))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "student not found"})}, rec)
}

func Test_studentApi_studentSuggest(t *testing.T) {
	resetDB(t)

	emma := testutil.CreateStudent(t, studentRepo, "Emma Johnson", "emma@school.edu", 5, "A", student.StatusActive)
	testutil.CreateStudent(t, studentRepo, "Liam Smith", "liam@school.edu", 5, "B", student.StatusActive)

	tests := []httpTest{
		{name: "no keyword", path: "/v1/students/suggest", wantData: marchallList(t, []interface{}{}...)},
		{name: "close match", path: "/v1/students/suggest?q=" + url.QueryEscape("Emma Jonson"), wantData: marchallList(t, emma)},
		{name: "no match", path: "/v1/students/suggest?q=zzzzz", wantData: marchallList(t, []interface{}{}...)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		tt.wantCode = http.StatusOK

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

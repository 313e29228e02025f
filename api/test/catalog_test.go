package test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/irsalhamdi/masterclass-store/core/catalog"
	"github.com/shopspring/decimal"
)

type catalogTest struct {
	*TestEnv
}

func TestCatalog(t *testing.T) {
	env, err := NewTestEnv(t, "catalog_test")
	if err != nil {
		t.Fatalf("initializing test env: %v", err)
	}

	ct := &catalogTest{env}

	a := ct.createMasterClassOK(t, "A")
	b := ct.createMasterClassOK(t, "B")
	c := ct.createMasterClassOK(t, "C")

	ct.listMasterClassesOK(t, []catalog.MasterClass{c, b, a})
	ct.showMasterClassOK(t, b)

	ct.createMasterClassBad(t, map[string]any{"title": nil, "teacher": "A", "price": 1})
	ct.createMasterClassBad(t, map[string]any{"title": "T", "teacher": "A"})
	free := ct.createMasterClass(t, map[string]any{"title": "Free", "teacher": "A", "price": 0})
	if free.Price.Decimal.Sign() != 0 {
		t.Fatalf("expected price 0, got %s", free.Price.Decimal)
	}

	b.Title = "B2"
	b.Price = decimal.NewNullDecimal(decimal.RequireFromString("99.90"))
	ct.updateMasterClassOK(t, b)
	ct.showMasterClassOK(t, b)

	ct.deleteMasterClassOK(t, a.ID)
	ct.deleteMasterClassOK(t, a.ID)
	ct.showMasterClassNotFound(t, a.ID)

	ct.listMasterClassesOK(t, []catalog.MasterClass{free, c, b})
}

func (ct *catalogTest) createMasterClass(t *testing.T, in map[string]any) catalog.MasterClass {
	t.Helper()

	var created struct {
		ID int64 `json:"id"`
	}
	if code := ct.Do(t, http.MethodPost, "/api/master-classes", in, &created); code != http.StatusCreated {
		t.Fatalf("can't create master class: status code %d", code)
	}

	var mc catalog.MasterClass
	if code := ct.Do(t, http.MethodGet, fmt.Sprintf("/api/master-classes/%d", created.ID), nil, &mc); code != http.StatusOK {
		t.Fatalf("can't fetch created master class: status code %d", code)
	}
	return mc
}

func (ct *catalogTest) createMasterClassOK(t *testing.T, title string) catalog.MasterClass {
	t.Helper()

	mc := ct.createMasterClass(t, map[string]any{
		"title":         title,
		"teacher":       "Teacher " + title,
		"price":         "150.00",
		"image_url":     "/img/master-class/" + title + ".jpg",
		"teacher_photo": "/img/master-class/p_" + title + ".jpg",
	})
	if mc.Title != title || mc.ImageURL == "" {
		t.Fatalf("unexpected master class stored: %+v", mc)
	}
	return mc
}

func (ct *catalogTest) createMasterClassBad(t *testing.T, in map[string]any) {
	t.Helper()

	var er struct {
		Error string `json:"error"`
	}
	if code := ct.Do(t, http.MethodPost, "/api/master-classes", in, &er); code != http.StatusBadRequest {
		t.Fatalf("expected status code %d, got %d", http.StatusBadRequest, code)
	}
	if er.Error == "" {
		t.Fatal("expected an error message")
	}
}

func (ct *catalogTest) listMasterClassesOK(t *testing.T, exp []catalog.MasterClass) {
	t.Helper()

	var got []catalog.MasterClass
	if code := ct.Do(t, http.MethodGet, "/api/master-classes", nil, &got); code != http.StatusOK {
		t.Fatalf("can't list master classes: status code %d", code)
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("unexpected master classes (-want +got):\n%s", diff)
	}
}

func (ct *catalogTest) showMasterClassOK(t *testing.T, exp catalog.MasterClass) {
	t.Helper()

	var got catalog.MasterClass
	if code := ct.Do(t, http.MethodGet, fmt.Sprintf("/api/master-classes/%d", exp.ID), nil, &got); code != http.StatusOK {
		t.Fatalf("can't show master class: status code %d", code)
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("unexpected master class (-want +got):\n%s", diff)
	}
}

func (ct *catalogTest) showMasterClassNotFound(t *testing.T, id int64) {
	t.Helper()

	if code := ct.Do(t, http.MethodGet, fmt.Sprintf("/api/master-classes/%d", id), nil, nil); code != http.StatusNotFound {
		t.Fatalf("expected status code %d, got %d", http.StatusNotFound, code)
	}
}

func (ct *catalogTest) updateMasterClassOK(t *testing.T, mc catalog.MasterClass) {
	t.Helper()

	up := catalog.MasterClassUp{
		Title:        mc.Title,
		Teacher:      mc.Teacher,
		Price:        mc.Price,
		ImageURL:     mc.ImageURL,
		TeacherPhoto: mc.TeacherPhoto,
	}
	if code := ct.Do(t, http.MethodPut, fmt.Sprintf("/api/master-classes/%d", mc.ID), up, nil); code != http.StatusOK {
		t.Fatalf("can't update master class: status code %d", code)
	}
}

func (ct *catalogTest) deleteMasterClassOK(t *testing.T, id int64) {
	t.Helper()

	if code := ct.Do(t, http.MethodDelete, fmt.Sprintf("/api/master-classes/%d", id), nil, nil); code != http.StatusOK {
		t.Fatalf("can't delete master class: status code %d", code)
	}
}

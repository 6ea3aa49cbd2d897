package graphql_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/packages-api/internal/domain/entity"
)

// Repositorios fake en memoria, suficientes para ejecutar el schema completo
// contra los casos de uso reales.

type fakeUserRepo struct {
	seq   int
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Insert(_ context.Context, u *entity.User) (*entity.User, error) {
	r.seq++
	cp := *u
	cp.ID = fmt.Sprintf("user-%d", r.seq)
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.users[cp.ID] = &cp
	return &cp, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

type fakeAdminRepo struct {
	seq    int
	admins map[string]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*entity.Admin{}}
}

func (r *fakeAdminRepo) Insert(_ context.Context, a *entity.Admin) (*entity.Admin, error) {
	r.seq++
	cp := *a
	cp.ID = fmt.Sprintf("admin-%d", r.seq)
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.admins[cp.ID] = &cp
	return &cp, nil
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id string) (*entity.Admin, error) {
	return r.admins[id], nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.admins[id]
	return ok, nil
}

type fakePackageRepo struct {
	seq      int
	packages map[string]*entity.Package
	owners   map[string]*entity.PackageOwner
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{
		packages: map[string]*entity.Package{},
		owners:   map[string]*entity.PackageOwner{},
	}
}

func (r *fakePackageRepo) Insert(_ context.Context, p *entity.Package) (*entity.Package, error) {
	r.seq++
	cp := *p
	cp.ID = fmt.Sprintf("pkg-%d", r.seq)
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.packages[cp.ID] = &cp
	return &cp, nil
}

func (r *fakePackageRepo) FindByID(_ context.Context, id string) (*entity.Package, error) {
	if p, ok := r.packages[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePackageRepo) FindByUserID(_ context.Context, userID string) ([]*entity.Package, error) {
	var out []*entity.Package
	for _, p := range r.packages {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePackageRepo) FindAll(_ context.Context) ([]*entity.Package, error) {
	out := make([]*entity.Package, 0, len(r.packages))
	for _, p := range r.packages {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePackageRepo) UpdateFields(_ context.Context, id string, fields entity.UpdatePackage) (*entity.Package, error) {
	p, ok := r.packages[id]
	if !ok {
		return nil, nil
	}
	if fields.Name != nil {
		p.Name = *fields.Name
	}
	if fields.Description != nil {
		p.Description = *fields.Description
	}
	if fields.Price != nil {
		p.Price = *fields.Price
	}
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (r *fakePackageRepo) Delete(_ context.Context, id string) error {
	delete(r.packages, id)
	return nil
}

func (r *fakePackageRepo) FilterByExpiryRange(_ context.Context, startDate, endDate, userID string) ([]*entity.Package, error) {
	var out []*entity.Package
	for _, p := range r.packages {
		day := p.ExpiresAt.Format("2006-01-02")
		if day < startDate || day > endDate {
			continue
		}
		if userID != "" && p.UserID != userID {
			continue
		}
		cp := *p
		if userID == "" {
			cp.Owner = r.owners[p.UserID]
		}
		out = append(out, &cp)
	}
	return out, nil
}

package domain

import "context"

// Function-field mocks of the service contracts, for handler tests. A nil
// function panics, which surfaces unexpected calls immediately.

type MockCategoryService struct {
	ListFn   func(ctx context.Context) ([]Category, error)
	GetFn    func(ctx context.Context, id string) (*Category, error)
	CreateFn func(ctx context.Context, params CreateCategoryParams) (*Category, error)
	UpdateFn func(ctx context.Context, id string, params UpdateCategoryParams) (*Category, error)
	DeleteFn func(ctx context.Context, id string) error
	NextIDFn func(ctx context.Context) (string, error)
}

var _ CategoryService = (*MockCategoryService)(nil)

func (m *MockCategoryService) List(ctx context.Context) ([]Category, error) {
	return m.ListFn(ctx)
}

func (m *MockCategoryService) Get(ctx context.Context, id string) (*Category, error) {
	return m.GetFn(ctx, id)
}

func (m *MockCategoryService) Create(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	return m.CreateFn(ctx, params)
}

func (m *MockCategoryService) Update(ctx context.Context, id string, params UpdateCategoryParams) (*Category, error) {
	return m.UpdateFn(ctx, id, params)
}

func (m *MockCategoryService) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockCategoryService) NextID(ctx context.Context) (string, error) {
	return m.NextIDFn(ctx)
}

type MockSubcategoryService struct {
	ListFn           func(ctx context.Context) ([]Subcategory, error)
	ListByCategoryFn func(ctx context.Context, categoryID string) ([]Subcategory, error)
	GetFn            func(ctx context.Context, id string) (*Subcategory, error)
	CreateFn         func(ctx context.Context, params CreateSubcategoryParams) (*Subcategory, error)
	UpdateFn         func(ctx context.Context, id string, params UpdateSubcategoryParams) (*Subcategory, error)
	DeleteFn         func(ctx context.Context, id string) error
	NextIDFn         func(ctx context.Context) (string, error)
}

var _ SubcategoryService = (*MockSubcategoryService)(nil)

func (m *MockSubcategoryService) List(ctx context.Context) ([]Subcategory, error) {
	return m.ListFn(ctx)
}

func (m *MockSubcategoryService) ListByCategory(ctx context.Context, categoryID string) ([]Subcategory, error) {
	return m.ListByCategoryFn(ctx, categoryID)
}

func (m *MockSubcategoryService) Get(ctx context.Context, id string) (*Subcategory, error) {
	return m.GetFn(ctx, id)
}

func (m *MockSubcategoryService) Create(ctx context.Context, params CreateSubcategoryParams) (*Subcategory, error) {
	return m.CreateFn(ctx, params)
}

func (m *MockSubcategoryService) Update(ctx context.Context, id string, params UpdateSubcategoryParams) (*Subcategory, error) {
	return m.UpdateFn(ctx, id, params)
}

func (m *MockSubcategoryService) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockSubcategoryService) NextID(ctx context.Context) (string, error) {
	return m.NextIDFn(ctx)
}

type MockProductService struct {
	ListFn       func(ctx context.Context, page, perPage int) (*ProductPage, error)
	GetFn        func(ctx context.Context, id string) (*ProductDetail, error)
	CreateFn     func(ctx context.Context, params CreateProductParams) (*ProductDetail, error)
	UpdateFn     func(ctx context.Context, id string, params UpdateProductParams) (*ProductDetail, error)
	DeleteFn     func(ctx context.Context, id string) error
	NextIDFn     func(ctx context.Context) (string, error)
	ListPublicFn func(ctx context.Context, filter PublicProductFilter) ([]PublicProductRow, error)
}

var _ ProductService = (*MockProductService)(nil)

func (m *MockProductService) List(ctx context.Context, page, perPage int) (*ProductPage, error) {
	return m.ListFn(ctx, page, perPage)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*ProductDetail, error) {
	return m.GetFn(ctx, id)
}

func (m *MockProductService) Create(ctx context.Context, params CreateProductParams) (*ProductDetail, error) {
	return m.CreateFn(ctx, params)
}

func (m *MockProductService) Update(ctx context.Context, id string, params UpdateProductParams) (*ProductDetail, error) {
	return m.UpdateFn(ctx, id, params)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	return m.DeleteFn(ctx, id)
}

func (m *MockProductService) NextID(ctx context.Context) (string, error) {
	return m.NextIDFn(ctx)
}

func (m *MockProductService) ListPublic(ctx context.Context, filter PublicProductFilter) ([]PublicProductRow, error) {
	return m.ListPublicFn(ctx, filter)
}

type MockContactService struct {
	CreateFn   func(ctx context.Context, params CreateContactParams) (*Contact, error)
	ListFn     func(ctx context.Context) ([]Contact, error)
	MarkReadFn func(ctx context.Context, id int64) error
	DeleteFn   func(ctx context.Context, id int64) error
}

var _ ContactService = (*MockContactService)(nil)

func (m *MockContactService) Create(ctx context.Context, params CreateContactParams) (*Contact, error) {
	return m.CreateFn(ctx, params)
}

func (m *MockContactService) List(ctx context.Context) ([]Contact, error) {
	return m.ListFn(ctx)
}

func (m *MockContactService) MarkRead(ctx context.Context, id int64) error {
	return m.MarkReadFn(ctx, id)
}

func (m *MockContactService) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

type MockUserService struct {
	AuthenticateFn   func(ctx context.Context, email, password string) (*AdminUser, error)
	IssueTokenFn     func(ctx context.Context, userID int64) (string, error)
	UserByTokenFn    func(ctx context.Context, token string) (*AdminUser, error)
	RevokeTokenFn    func(ctx context.Context, token string) error
	ListFn           func(ctx context.Context) ([]AdminUser, error)
	GetFn            func(ctx context.Context, id int64) (*AdminUser, error)
	CreateFn         func(ctx context.Context, actor AdminUser, params CreateUserParams) (*AdminUser, error)
	UpdateFn         func(ctx context.Context, actor AdminUser, id int64, params UpdateUserParams) (*AdminUser, error)
	DeleteFn         func(ctx context.Context, actor AdminUser, id int64) error
	UpdateProfileFn  func(ctx context.Context, actor AdminUser, params UpdateProfileParams) (*AdminUser, error)
	ChangePasswordFn func(ctx context.Context, actor AdminUser, current, next string) error
}

var _ UserService = (*MockUserService)(nil)

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*AdminUser, error) {
	return m.AuthenticateFn(ctx, email, password)
}

func (m *MockUserService) IssueToken(ctx context.Context, userID int64) (string, error) {
	return m.IssueTokenFn(ctx, userID)
}

func (m *MockUserService) UserByToken(ctx context.Context, token string) (*AdminUser, error) {
	return m.UserByTokenFn(ctx, token)
}

func (m *MockUserService) RevokeToken(ctx context.Context, token string) error {
	return m.RevokeTokenFn(ctx, token)
}

func (m *MockUserService) List(ctx context.Context) ([]AdminUser, error) {
	return m.ListFn(ctx)
}

func (m *MockUserService) Get(ctx context.Context, id int64) (*AdminUser, error) {
	return m.GetFn(ctx, id)
}

func (m *MockUserService) Create(ctx context.Context, actor AdminUser, params CreateUserParams) (*AdminUser, error) {
	return m.CreateFn(ctx, actor, params)
}

func (m *MockUserService) Update(ctx context.Context, actor AdminUser, id int64, params UpdateUserParams) (*AdminUser, error) {
	return m.UpdateFn(ctx, actor, id, params)
}

func (m *MockUserService) Delete(ctx context.Context, actor AdminUser, id int64) error {
	return m.DeleteFn(ctx, actor, id)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, actor AdminUser, params UpdateProfileParams) (*AdminUser, error) {
	return m.UpdateProfileFn(ctx, actor, params)
}

func (m *MockUserService) ChangePassword(ctx context.Context, actor AdminUser, current, next string) error {
	return m.ChangePasswordFn(ctx, actor, current, next)
}

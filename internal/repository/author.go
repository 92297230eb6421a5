package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/riofed5/Book-reservation/internal/errs"
	"github.com/riofed5/Book-reservation/internal/model"
)

var authorColumns = []string{"id", "name", "writtings"}

func (r *repository) CreateAuthor(ctx context.Context, author model.Author) (model.Author, error) {
	query, args, err := qb.Insert(authorsTableName).
		Columns(authorColumns...).
		Values(author.ID, author.Name, author.Writtings).
		Suffix("returning id, name, writtings").
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var created model.Author
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateAuthor", zap.String("q", query), zap.Any("args", args))
		return model.Author{}, err
	}
	return created, nil
}

func (r *repository) GetAuthor(ctx context.Context, id string) (model.Author, error) {
	query, args, err := qb.Select(authorColumns...).
		From(authorsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errs.ErrNotFound
		}
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	query, args, err := qb.Select(authorColumns...).
		From(authorsTableName).
		OrderBy("name asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var authors []model.Author
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, id string, req model.UpdateAuthorRequest) (model.Author, error) {
	if req.Name == nil {
		return r.GetAuthor(ctx, id)
	}

	query, args, err := qb.Update(authorsTableName).
		Set("name", *req.Name).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, name, writtings").
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errs.ErrNotFound
		}
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) SetAuthorWrittings(ctx context.Context, id string, writtings model.BookIDs) error {
	query, args, err := qb.Update(authorsTableName).
		Set("writtings", writtings).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteAuthor(ctx context.Context, id string) error {
	query, args, err := qb.Delete(authorsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

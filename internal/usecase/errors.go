package usecase

import "errors"

// Taksonomi error yang terlihat klien. Handler memetakan lewat errors.Is:
// ErrValidation -> 400, ErrNotFound -> 404, ErrUnauthorized -> 403,
// ErrInvalidState dan ErrConflict -> 409. Tidak ada yang di-retry oleh core;
// setiap kegagalan berskop satu operasi dan tidak meninggalkan state parsial.
var (
	ErrValidation   = errors.New("validasi gagal")
	ErrNotFound     = errors.New("data tidak ditemukan")
	ErrUnauthorized = errors.New("tidak berwenang")
	ErrInvalidState = errors.New("pengajuan sudah diputus")
	ErrConflict     = errors.New("kalah balapan keputusan")
)

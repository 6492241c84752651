package catalog

// User-facing texts. The catalog UI is Indonesian.
const (
	titleInputError = "Input Error"
	titleWarning    = "Peringatan"
	titleSuccess    = "Sukses"
	titleError      = "Error"
	titleConfirm    = "Konfirmasi Hapus"

	msgFieldsRequired = "Semua field harus diisi!"
	msgSelectRow      = "Pilih baris yang akan dihapus."
	msgConfirmDelete  = "Apakah Anda yakin ingin menghapus data ini?"
	msgSaveFailed     = "Gagal menyimpan data."
	msgUpdated        = "Data berhasil diperbarui."
	msgUpdateFailed   = "Gagal memperbarui data."
	msgDeleteFailed   = "Gagal menghapus data."
	msgLoadFailed     = "Gagal memuat data."
	msgExported       = "Data berhasil diekspor ke CSV."
	msgExportFailed   = "Gagal mengekspor data ke CSV."

	exportCaption = "Simpan CSV"
	exportFilter  = "CSV Files (*.csv)"
)

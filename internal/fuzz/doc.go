// Package fuzztests houses Go fuzz harnesses for the type parser, the QWORD
// engine and the fold batch driver. Their goal is to guard against panics
// and broken interning invariants on arbitrary inputs.
//
// Назначение: прогонять случайные имена типов, операнды и batch-файлы через
// types, qword и driver.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests

// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package registry stores fixture entries by category.
//
// Each category holds an insertion-ordered set of entries; an entry whose
// identity matches one already stored is ignored. Lookups return snapshots,
// so readers never observe a partially updated set.
//
// Three strategies decide which instance a caller gets:
//
//   - Global: one process-wide registry (Default), created on first use
//     and never discarded.
//   - PerContext: one registry per scope. Attach a scope with WithScope and
//     call the returned release function when done:
//
//     ctx, release := registry.WithScope(ctx)
//     defer release()
//     r, err := registry.Get(ctx, registry.PerContext)
//
//   - NewInstance: a fresh private registry on every Get.
package registry

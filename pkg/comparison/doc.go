// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package comparison turns search result files into figures comparing A* with
Greedy Best-First Search.

Two variants exist. SearchCompare reads search_compare_data.txt where both
algorithms were run on the same problems and plots their final path costs
against the best possible distance. SearchProfile reads one file per
algorithm (gbfs_data.txt, astar_data.txt) and plots path cost, planning time
and search tree size against the best distance.
*/
package comparison
